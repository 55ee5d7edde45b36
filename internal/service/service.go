package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agrismart/internal/config"
	"agrismart/internal/logger"
	"agrismart/internal/metrics"
	"agrismart/internal/models"
	"agrismart/internal/repository"
)

// Telemetry exposes the live readings. Mutation belongs to the scheduler.
type Telemetry interface {
	Sensor() models.SensorReading
	Weather() models.WeatherReading
}

// Analytics exposes the chart series and the active selection.
type Analytics interface {
	ActiveChart() models.ChartSeries
	Charts() []models.ChartSeries
	SelectChart(key string) (models.ChartSeries, bool)
}

// Alerts exposes the bounded notification feed.
type Alerts interface {
	Notifications() []models.NotificationEntry
	Unread() int
	MarkNotificationsRead()
	SubscribeNotifications() (<-chan models.NotificationEntry, func())
}

// Spray exposes the actuator commands.
type Spray interface {
	SprayState() models.SprayState
	ToggleSpray() models.SprayState
	StopSpray() bool
}

// Controls exposes the auto-mode flag and camera refresh.
type Controls interface {
	AutoMode() bool
	SetAutoMode(enabled bool)
	RefreshCamera()
}

// Monitoring exposes the composed dashboard view.
type Monitoring interface {
	Snapshot() models.DashboardSnapshot
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.DashboardEvent, error)
}

// History exposes recorded sensor readings.
type History interface {
	Readings(ctx context.Context, limit int) ([]models.ReadingSample, error)
}

// Deps carries the injectable collaborators. Zero values fall back to real ones.
type Deps struct {
	Rand      Rand
	AfterFunc AfterFunc
	Metrics   *metrics.Metrics
	Log       *logger.Logger
	Now       func() time.Time
}

// Service aggregates all sub-services behind one handle.
type Service struct {
	Telemetry
	Analytics
	Alerts
	Spray
	Controls
	Monitoring
	EventLog
	History

	Store     *TelemetryStore
	Feed      *NotificationFeed
	Scheduler *ScheduleManager
	Recorder  *Recorder
	log       *logger.Logger
}

// NewService wires the engine onto the repository layer.
func NewService(repos *repository.Repository, cfg config.Config, d Deps) (*Service, error) {
	if d.Rand == nil {
		d.Rand = NewRand(0)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}

	feed := NewNotificationFeed(d.Metrics)
	feed.now = d.Now
	rec := NewRecorder(repos.EventRepo, repos.ReadingRepo, d.Metrics, d.Log.Named("recorder"))

	store, err := NewTelemetryStore(TelemetryOptions{
		AlertProbability: cfg.AlertProbability,
		BatteryFloor:     cfg.BatteryFloor,
	}, d.Rand, feed, d.Metrics, rec)
	if err != nil {
		return nil, fmt.Errorf("telemetry store: %w", err)
	}
	store.now = d.Now

	registry, err := NewDefaultChartRegistry()
	if err != nil {
		return nil, fmt.Errorf("chart registry: %w", err)
	}

	spray := NewSprayController(cfg.SprayAutoStop, d.AfterFunc, feed, rec, d.Metrics, d.Log.Named("spray"))
	spray.now = d.Now

	charts := NewChartService(registry, rec, d.Log.Named("charts"))
	charts.now = d.Now
	notes := NewNotificationService(feed)
	sprays := NewSprayService(spray)
	controls := NewControlService(feed, rec, d.Log.Named("controls"))
	controls.now = d.Now

	sched := NewScheduleManager(ScheduleOptions{
		SensorInterval:     cfg.SensorInterval,
		WeatherInterval:    cfg.WeatherInterval,
		AmbientInterval:    cfg.AmbientInterval,
		AmbientProbability: cfg.AmbientProbability,
	}, store, feed, d.Rand, d.Log.Named("scheduler"))

	return &Service{
		Telemetry:     store,
		Analytics:     charts,
		Alerts:        notes,
		Spray:         sprays,
		Controls:      controls,
		Monitoring:    NewMonitoringService(store, charts, notes, sprays, controls, d.Now),
		EventLog:      NewEventLogService(repos.EventRepo),
		History:       NewHistoryService(repos.ReadingRepo),
		Store:         store,
		Feed:          feed,
		Scheduler:     sched,
		Recorder:      rec,
		log:           d.Log,
	}, nil
}

// Run starts the recorder and the scheduler and blocks until ctx is
// cancelled and both have stopped.
func (s *Service) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.Recorder.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Recorder.Follow(ctx, s.Feed)
	}()
	go func() {
		defer wg.Done()
		s.Scheduler.Run(ctx)
	}()
	wg.Wait()
	s.log.Infow("service_stopped")
}
