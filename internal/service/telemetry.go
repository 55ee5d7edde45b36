package service

import (
	"sync"
	"time"

	"agrismart/internal/metrics"
	"agrismart/internal/models"
)

// ----------- Generator bounds -----------
const (
	SensorTempMinC     = 22.0
	SensorTempMaxC     = 28.0
	SensorHumidityMin  = 60.0
	SensorHumidityMax  = 80.0
	SoilMoistureMin    = 40.0
	SoilMoistureMax    = 70.0
	BatteryMaxDrainPct = 0.5
	DefaultBatteryMin  = 85.0

	WeatherTempMinC    = 25.0
	WeatherTempMaxC    = 33.0
	WeatherHumidityMin = 60.0
	WeatherHumidityMax = 80.0

	DefaultAlertProbability = 0.1
)

// Seed values the store starts from.
var (
	SeedSensor = models.SensorReading{
		TemperatureC: 24,
		Humidity:     68,
		SoilMoisture: 45,
		BatteryLevel: 92,
	}
	SeedWeather = models.WeatherReading{
		TemperatureC: 28,
		Condition:    "Partly Cloudy",
		Humidity:     65,
		WindSpeedKmh: 12,
		VisibilityKm: 10,
	}
)

// Notifier receives user-visible alerts.
type Notifier interface {
	Push(message, timestampLabel string, severity models.Severity) models.NotificationEntry
}

// TelemetryListener observes every applied mutation. Calls happen after the
// store lock is released and before any alert for the same tick.
type TelemetryListener interface {
	SensorUpdated(r models.SensorReading, at time.Time)
	WeatherUpdated(w models.WeatherReading, at time.Time)
}

type TelemetryOptions struct {
	AlertProbability float64
	BatteryFloor     float64
	Rules            []AlertRule // nil means DefaultAlertRules
}

// DefaultTelemetryOptions mirrors the reference dashboard.
func DefaultTelemetryOptions() TelemetryOptions {
	return TelemetryOptions{
		AlertProbability: DefaultAlertProbability,
		BatteryFloor:     DefaultBatteryMin,
	}
}

// TelemetryStore owns the live sensor and weather readings.
type TelemetryStore struct {
	mu      sync.RWMutex
	sensor  models.SensorReading
	weather models.WeatherReading

	alertP float64
	floor  float64
	alerts *AlertEvaluator

	rnd       Rand
	notifier  Notifier
	listeners []TelemetryListener
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewTelemetryStore(opts TelemetryOptions, rnd Rand, notifier Notifier, m *metrics.Metrics, listeners ...TelemetryListener) (*TelemetryStore, error) {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultAlertRules
	}
	alerts, err := NewAlertEvaluator(rules)
	if err != nil {
		return nil, err
	}
	return &TelemetryStore{
		sensor:    SeedSensor,
		weather:   SeedWeather,
		alertP:    opts.AlertProbability,
		floor:     opts.BatteryFloor,
		alerts:    alerts,
		rnd:       rnd,
		notifier:  notifier,
		listeners: listeners,
		metrics:   m,
		now:       time.Now,
	}, nil
}

// AddListener registers l for subsequent mutations.
func (s *TelemetryStore) AddListener(l TelemetryListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners[:len(s.listeners):len(s.listeners)], l)
}

func (s *TelemetryStore) Sensor() models.SensorReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sensor
}

func (s *TelemetryStore) Weather() models.WeatherReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weather
}

// Mutate re-rolls the sensor reading and drains the battery, then passes the
// reading through the sampled alert gate.
func (s *TelemetryStore) Mutate() models.SensorReading {
	s.mu.Lock()
	s.sensor.TemperatureC = round1(uniform(s.rnd, SensorTempMinC, SensorTempMaxC))
	s.sensor.Humidity = round1(uniform(s.rnd, SensorHumidityMin, SensorHumidityMax))
	s.sensor.SoilMoisture = round1(uniform(s.rnd, SoilMoistureMin, SoilMoistureMax))
	s.sensor.BatteryLevel = s.drainBattery(s.sensor.BatteryLevel)
	reading := s.sensor
	listeners := s.listeners
	s.mu.Unlock()

	at := s.now().UTC()
	s.metrics.SensorTick(reading.TemperatureC, reading.Humidity, reading.SoilMoisture, reading.BatteryLevel)
	for _, l := range listeners {
		l.SensorUpdated(reading, at)
	}

	if chance(s.rnd, s.alertP) {
		if rule, ok := s.alerts.Evaluate(reading); ok {
			s.notifier.Push(rule.Message, rule.Label, rule.Severity)
		}
	}
	return reading
}

// drainBattery never raises the level and never drops it below the floor.
func (s *TelemetryStore) drainBattery(level float64) float64 {
	next := max(s.floor, round1(level-s.rnd.Float64()*BatteryMaxDrainPct))
	if next > level {
		// a level already under the floor stays where it is
		return level
	}
	return next
}

// MutateWeather re-rolls temperature and humidity only; condition, wind speed
// and visibility keep their values.
func (s *TelemetryStore) MutateWeather() models.WeatherReading {
	s.mu.Lock()
	s.weather.TemperatureC = round1(uniform(s.rnd, WeatherTempMinC, WeatherTempMaxC))
	s.weather.Humidity = round1(uniform(s.rnd, WeatherHumidityMin, WeatherHumidityMax))
	weather := s.weather
	listeners := s.listeners
	s.mu.Unlock()

	at := s.now().UTC()
	s.metrics.WeatherTick(weather.TemperatureC, weather.Humidity)
	for _, l := range listeners {
		l.WeatherUpdated(weather, at)
	}
	return weather
}
