package models

import "time"

// Event types written to the dashboard log.
const (
	EventNotification = "NOTIFICATION"
	EventSprayStart   = "SPRAY_START"
	EventSprayStop    = "SPRAY_STOP"
	EventAutoMode     = "AUTO_MODE"
	EventChartSelect  = "CHART_SELECT"
	EventWeatherTick  = "WEATHER_TICK"
)

// DashboardEvent is a single log entry.
type DashboardEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // NOTIFICATION | SPRAY_START | SPRAY_STOP | AUTO_MODE | CHART_SELECT | WEATHER_TICK
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
