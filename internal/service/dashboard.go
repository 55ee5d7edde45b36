package service

import (
	"sync"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/models"
)

const (
	msgAutoModeOn    = "Auto mode enabled"
	msgAutoModeOff   = "Auto mode disabled"
	msgCameraRefresh = "Camera feed refreshed"
)

// ChartService exposes the chart registry and records selections.
type ChartService struct {
	registry *ChartRegistry
	sink     EventSink
	log      *logger.Logger
	now      func() time.Time
}

func NewChartService(registry *ChartRegistry, sink EventSink, log *logger.Logger) *ChartService {
	if sink == nil {
		sink = discardSink{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ChartService{registry: registry, sink: sink, log: log, now: time.Now}
}

func (s *ChartService) ActiveChart() models.ChartSeries {
	return s.registry.Active()
}

func (s *ChartService) Charts() []models.ChartSeries {
	return s.registry.All()
}

// SelectChart switches the active series. An unknown key changes nothing.
func (s *ChartService) SelectChart(key string) (models.ChartSeries, bool) {
	series, ok := s.registry.Select(key)
	if !ok {
		s.log.Debugw("chart_select_ignored", "key", key)
		return series, false
	}
	s.sink.Record(models.DashboardEvent{
		OccurredAt:  s.now().UTC(),
		Type:        models.EventChartSelect,
		Description: "Chart switched to " + series.DisplayName,
		Metadata:    map[string]any{"key": key},
	})
	return series, true
}

// NotificationService is the read and acknowledge side of the feed.
type NotificationService struct {
	feed *NotificationFeed
}

func NewNotificationService(feed *NotificationFeed) *NotificationService {
	return &NotificationService{feed: feed}
}

func (s *NotificationService) Notifications() []models.NotificationEntry {
	return s.feed.Entries()
}

func (s *NotificationService) Unread() int {
	return s.feed.Unread()
}

func (s *NotificationService) MarkNotificationsRead() {
	s.feed.MarkRead()
}

func (s *NotificationService) SubscribeNotifications() (<-chan models.NotificationEntry, func()) {
	return s.feed.Subscribe()
}

type SprayService struct {
	ctrl *SprayController
}

func NewSprayService(ctrl *SprayController) *SprayService {
	return &SprayService{ctrl: ctrl}
}

func (s *SprayService) SprayState() models.SprayState { return s.ctrl.State() }

func (s *SprayService) ToggleSpray() models.SprayState { return s.ctrl.Toggle() }

func (s *SprayService) StopSpray() bool { return s.ctrl.Stop() }

// ControlService holds the auto-mode flag and the camera refresh command.
// Auto mode has no effect on scheduling or spraying.
type ControlService struct {
	mu       sync.Mutex
	autoMode bool

	notifier Notifier
	sink     EventSink
	log      *logger.Logger
	now      func() time.Time
}

func NewControlService(notifier Notifier, sink EventSink, log *logger.Logger) *ControlService {
	if sink == nil {
		sink = discardSink{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ControlService{notifier: notifier, sink: sink, log: log, now: time.Now}
}

func (s *ControlService) AutoMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoMode
}

// SetAutoMode stores enabled. A notification is pushed only when the value changes.
func (s *ControlService) SetAutoMode(enabled bool) {
	s.mu.Lock()
	changed := s.autoMode != enabled
	s.autoMode = enabled
	s.mu.Unlock()

	if !changed {
		return
	}
	msg := msgAutoModeOff
	if enabled {
		msg = msgAutoModeOn
	}
	s.notifier.Push(msg, "now", models.SeverityInfo)
	s.sink.Record(models.DashboardEvent{
		OccurredAt:  s.now().UTC(),
		Type:        models.EventAutoMode,
		Description: msg,
		Metadata:    map[string]any{"enabled": enabled},
	})
	s.log.Infow("auto_mode_changed", "enabled", enabled)
}

func (s *ControlService) RefreshCamera() {
	s.notifier.Push(msgCameraRefresh, "now", models.SeverityInfo)
}

// MonitoringService assembles the full dashboard view.
type MonitoringService struct {
	telemetry     Telemetry
	charts        Analytics
	notifications Alerts
	spray         Spray
	controls      Controls
	now           func() time.Time
}

func NewMonitoringService(t Telemetry, c Analytics, n Alerts, sp Spray, ctl Controls, now func() time.Time) *MonitoringService {
	if now == nil {
		now = time.Now
	}
	return &MonitoringService{telemetry: t, charts: c, notifications: n, spray: sp, controls: ctl, now: now}
}

// Snapshot reads each component in turn; the result is consistent per
// component, not across them.
func (s *MonitoringService) Snapshot() models.DashboardSnapshot {
	return models.DashboardSnapshot{
		Sensor:        s.telemetry.Sensor(),
		Weather:       s.telemetry.Weather(),
		Chart:         s.charts.ActiveChart(),
		Notifications: s.notifications.Notifications(),
		Unread:        s.notifications.Unread(),
		Spray:         s.spray.SprayState(),
		AutoMode:      s.controls.AutoMode(),
		UpdatedAt:     s.now().UTC(),
	}
}
