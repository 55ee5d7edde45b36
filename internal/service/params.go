package service

import "time"

// LogFilter narrows the audit log by time range and event type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "NOTIFICATION", "SPRAY_START", "SPRAY_STOP", "AUTO_MODE", "CHART_SELECT", "WEATHER_TICK"
}
