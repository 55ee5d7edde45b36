package handlers

import (
	"context"
	"sync"
	"time"

	"agrismart/internal/models"
	"agrismart/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTelemetry struct {
	sensor  models.SensorReading
	weather models.WeatherReading
}

func (m *mockTelemetry) Sensor() models.SensorReading   { return m.sensor }
func (m *mockTelemetry) Weather() models.WeatherReading { return m.weather }

type mockAnalytics struct {
	series    []models.ChartSeries
	active    string
	selectLog []string
}

func (m *mockAnalytics) ActiveChart() models.ChartSeries {
	for _, s := range m.series {
		if s.Key == m.active {
			return s
		}
	}
	return models.ChartSeries{}
}

func (m *mockAnalytics) Charts() []models.ChartSeries { return m.series }

func (m *mockAnalytics) SelectChart(key string) (models.ChartSeries, bool) {
	m.selectLog = append(m.selectLog, key)
	for _, s := range m.series {
		if s.Key == key {
			m.active = key
			return s, true
		}
	}
	return models.ChartSeries{}, false
}

type mockAlerts struct {
	mu       sync.Mutex
	entries  []models.NotificationEntry
	unread   int
	readCall int
	ch       chan models.NotificationEntry
}

func (m *mockAlerts) Notifications() []models.NotificationEntry { return m.entries }
func (m *mockAlerts) Unread() int                               { return m.unread }

func (m *mockAlerts) MarkNotificationsRead() {
	m.readCall++
	m.unread = 0
}

func (m *mockAlerts) SubscribeNotifications() (<-chan models.NotificationEntry, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ch == nil {
		m.ch = make(chan models.NotificationEntry, 4)
	}
	return m.ch, func() {}
}

type mockSpray struct {
	state      models.SprayState
	toggles    int
	stopResult bool
	stops      int
}

func (m *mockSpray) SprayState() models.SprayState { return m.state }

func (m *mockSpray) ToggleSpray() models.SprayState {
	m.toggles++
	if m.state == models.SprayActive {
		m.state = models.SprayIdle
	} else {
		m.state = models.SprayActive
	}
	return m.state
}

func (m *mockSpray) StopSpray() bool {
	m.stops++
	return m.stopResult
}

type mockControls struct {
	auto      bool
	sets      []bool
	refreshes int
}

func (m *mockControls) AutoMode() bool { return m.auto }

func (m *mockControls) SetAutoMode(enabled bool) {
	m.sets = append(m.sets, enabled)
	m.auto = enabled
}

func (m *mockControls) RefreshCamera() { m.refreshes++ }

type mockMonitoring struct {
	snap models.DashboardSnapshot
}

func (m *mockMonitoring) Snapshot() models.DashboardSnapshot { return m.snap }

type mockEventLog struct {
	resp     []models.DashboardEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.DashboardEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockHistory struct {
	resp      []models.ReadingSample
	err       error
	lastLimit int
}

func (m *mockHistory) Readings(ctx context.Context, limit int) ([]models.ReadingSample, error) {
	m.lastLimit = limit
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func defaultSnapshot() models.DashboardSnapshot {
	return models.DashboardSnapshot{
		Sensor:  models.SensorReading{TemperatureC: 24, Humidity: 68, SoilMoisture: 45, BatteryLevel: 92},
		Weather: models.WeatherReading{TemperatureC: 28, Condition: "Partly Cloudy", Humidity: 65, WindSpeedKmh: 12, VisibilityKm: 10},
		Chart:   models.ChartSeries{Key: "infection", Labels: []string{"Jan"}, Values: []float64{12}},
		Spray:   models.SprayIdle,
	}
}
