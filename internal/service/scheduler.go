package service

import (
	"context"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/models"

	"github.com/robfig/cron/v3"
)

// ----------- Schedule defaults -----------
const (
	DefaultSensorInterval     = 30 * time.Second
	DefaultWeatherInterval    = 5 * time.Minute
	DefaultAmbientInterval    = 2 * time.Minute
	DefaultAmbientProbability = 0.3
)

// AmbientMessages are the routine status lines the ambient tick picks from.
var AmbientMessages = []string{
	"System health check completed",
	"Sensor calibration successful",
	"Weather data updated",
	"Tank level monitored",
}

type ScheduleOptions struct {
	SensorInterval     time.Duration
	WeatherInterval    time.Duration
	AmbientInterval    time.Duration
	AmbientProbability float64
}

func DefaultScheduleOptions() ScheduleOptions {
	return ScheduleOptions{
		SensorInterval:     DefaultSensorInterval,
		WeatherInterval:    DefaultWeatherInterval,
		AmbientInterval:    DefaultAmbientInterval,
		AmbientProbability: DefaultAmbientProbability,
	}
}

// ScheduleManager owns the three recurring jobs. Nothing else mutates
// telemetry on a timer.
type ScheduleManager struct {
	opts      ScheduleOptions
	telemetry *TelemetryStore
	notifier  Notifier
	rnd       Rand
	log       *logger.Logger
}

func NewScheduleManager(opts ScheduleOptions, telemetry *TelemetryStore, notifier Notifier, rnd Rand, log *logger.Logger) *ScheduleManager {
	if log == nil {
		log = logger.Nop()
	}
	return &ScheduleManager{
		opts:      opts,
		telemetry: telemetry,
		notifier:  notifier,
		rnd:       rnd,
		log:       log,
	}
}

func (s *ScheduleManager) SensorTick() {
	r := s.telemetry.Mutate()
	s.log.Debugw("sensor_tick",
		"temperature_c", r.TemperatureC,
		"humidity", r.Humidity,
		"soil_moisture", r.SoilMoisture,
		"battery_level", r.BatteryLevel,
	)
}

func (s *ScheduleManager) WeatherTick() {
	w := s.telemetry.MutateWeather()
	s.log.Debugw("weather_tick", "temperature_c", w.TemperatureC, "humidity", w.Humidity)
}

// AmbientTick pushes one routine info message with the configured
// probability. It reports whether a message was pushed.
func (s *ScheduleManager) AmbientTick() bool {
	if !chance(s.rnd, s.opts.AmbientProbability) {
		return false
	}
	msg := AmbientMessages[pick(s.rnd, len(AmbientMessages))]
	s.notifier.Push(msg, "now", models.SeverityInfo)
	return true
}

// Run starts the jobs and blocks until ctx is cancelled.
func (s *ScheduleManager) Run(ctx context.Context) {
	cl := logger.NewCronLogger(s.log)
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	c.Schedule(cron.Every(s.opts.SensorInterval), cron.FuncJob(s.SensorTick))
	c.Schedule(cron.Every(s.opts.WeatherInterval), cron.FuncJob(s.WeatherTick))
	c.Schedule(cron.Every(s.opts.AmbientInterval), cron.FuncJob(func() { s.AmbientTick() }))

	c.Start()
	s.log.Infow("scheduler_started",
		"sensor_interval", s.opts.SensorInterval.String(),
		"weather_interval", s.opts.WeatherInterval.String(),
		"ambient_interval", s.opts.AmbientInterval.String(),
	)

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Infow("scheduler_stopped")
}
