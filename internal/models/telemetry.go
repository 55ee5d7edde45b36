package models

import "time"

// SensorReading is the current field sensor snapshot. All values carry one decimal.
type SensorReading struct {
	TemperatureC float64 `json:"temperature_c"` // °C
	Humidity     float64 `json:"humidity"`      // %
	SoilMoisture float64 `json:"soil_moisture"` // %
	BatteryLevel float64 `json:"battery_level"` // %, never increases
}

// WeatherReading is the local weather snapshot.
type WeatherReading struct {
	TemperatureC float64 `json:"temperature_c"` // °C
	Condition    string  `json:"condition"`     // e.g. "Partly Cloudy"
	Humidity     float64 `json:"humidity"`      // %
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	VisibilityKm float64 `json:"visibility_km"`
}

// ReadingSample is one persisted sensor reading.
type ReadingSample struct {
	ID         int64         `json:"id"`
	Reading    SensorReading `json:"reading"`
	RecordedAt time.Time     `json:"recorded_at"`
}
