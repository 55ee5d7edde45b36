package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "agrismart"

// Metrics groups the dashboard engine collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	sensorTicks    prometheus.Counter
	weatherTicks   prometheus.Counter
	sensorValue    *prometheus.GaugeVec
	weatherValue   *prometheus.GaugeVec
	notifications  *prometheus.CounterVec
	unread         prometheus.Gauge
	sprayStarts    prometheus.Counter
	sprayStops     *prometheus.CounterVec
	eventsDropped  prometheus.Counter
	eventsWriteErr prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sensorTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sensor_ticks_total",
			Help: "Sensor mutations applied.",
		}),
		weatherTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "weather_ticks_total",
			Help: "Weather mutations applied.",
		}),
		sensorValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "sensor_value",
			Help: "Latest synthetic sensor reading by field.",
		}, []string{"field"}),
		weatherValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "weather_value",
			Help: "Latest synthetic weather reading by field.",
		}, []string{"field"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "notifications_total",
			Help: "Notifications pushed to the feed by severity.",
		}, []string{"severity"}),
		unread: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "notifications_unread",
			Help: "Current unread counter (saturating).",
		}),
		sprayStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "spray_activations_total",
			Help: "Spray activations.",
		}),
		sprayStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "spray_stops_total",
			Help: "Spray stops by reason (manual|auto).",
		}, []string{"reason"}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "event_log_dropped_total",
			Help: "Log events dropped because the recorder queue was full.",
		}),
		eventsWriteErr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "event_log_write_errors_total",
			Help: "Log events that could not be persisted after retries.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.sensorTicks, m.weatherTicks, m.sensorValue, m.weatherValue,
			m.notifications, m.unread, m.sprayStarts, m.sprayStops,
			m.eventsDropped, m.eventsWriteErr,
		)
	}
	return m
}

func (m *Metrics) SensorTick(temp, humidity, soil, battery float64) {
	if m == nil {
		return
	}
	m.sensorTicks.Inc()
	m.sensorValue.WithLabelValues("temperature_c").Set(temp)
	m.sensorValue.WithLabelValues("humidity").Set(humidity)
	m.sensorValue.WithLabelValues("soil_moisture").Set(soil)
	m.sensorValue.WithLabelValues("battery_level").Set(battery)
}

func (m *Metrics) WeatherTick(temp, humidity float64) {
	if m == nil {
		return
	}
	m.weatherTicks.Inc()
	m.weatherValue.WithLabelValues("temperature_c").Set(temp)
	m.weatherValue.WithLabelValues("humidity").Set(humidity)
}

func (m *Metrics) NotificationPushed(severity string, unread int) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(severity).Inc()
	m.unread.Set(float64(unread))
}

func (m *Metrics) UnreadReset() {
	if m == nil {
		return
	}
	m.unread.Set(0)
}

func (m *Metrics) SprayStarted() {
	if m == nil {
		return
	}
	m.sprayStarts.Inc()
}

func (m *Metrics) SprayStopped(reason string) {
	if m == nil {
		return
	}
	m.sprayStops.WithLabelValues(reason).Inc()
}

func (m *Metrics) EventDropped() {
	if m == nil {
		return
	}
	m.eventsDropped.Inc()
}

func (m *Metrics) EventWriteFailed() {
	if m == nil {
		return
	}
	m.eventsWriteErr.Inc()
}
