package models

import "time"

// DashboardSnapshot is everything a presentation layer needs for one render.
type DashboardSnapshot struct {
	Sensor        SensorReading       `json:"sensor"`
	Weather       WeatherReading      `json:"weather"`
	Chart         ChartSeries         `json:"chart"`
	Notifications []NotificationEntry `json:"notifications"`
	Unread        int                 `json:"unread"`
	Spray         SprayState          `json:"spray"`
	AutoMode      bool                `json:"auto_mode"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
