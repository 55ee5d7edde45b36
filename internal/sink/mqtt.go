package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/models"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	queueSize      = 64
	publishTimeout = 5 * time.Second
	disconnectMs   = 250
	connectRetries = 5

	topicNotifications = "notifications"
	topicTelemetry     = "telemetry"
	topicWeather       = "weather"
)

var errPublishTimeout = errors.New("mqtt publish timed out")

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Close()
}

// NotificationSource hands out a live notification stream.
type NotificationSource interface {
	SubscribeNotifications() (<-chan models.NotificationEntry, func())
}

type pahoPublisher struct {
	client mqtt.Client
}

// Connect dials broker, retrying with exponential backoff.
func Connect(ctx context.Context, broker, clientID string, log *logger.Logger) (Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Warnw("mqtt_connect_failed", "broker", broker, "err", token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, connectRetries-1), ctx))
	if err != nil {
		return nil, fmt.Errorf("connect mqtt %s: %w", broker, err)
	}
	log.Infow("mqtt_connected", "broker", broker, "client_id", clientID)
	return &pahoPublisher{client: client}, nil
}

func (p *pahoPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errPublishTimeout
	}
	return token.Error()
}

func (p *pahoPublisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(disconnectMs)
	}
}

type message struct {
	topic   string
	payload []byte
}

type telemetryPayload struct {
	Sensor     *models.SensorReading  `json:"sensor,omitempty"`
	Weather    *models.WeatherReading `json:"weather,omitempty"`
	RecordedAt time.Time              `json:"recorded_at"`
}

// MQTTSink mirrors telemetry and notifications onto MQTT topics under prefix.
type MQTTSink struct {
	pub    Publisher
	prefix string
	queue  chan message
	log    *logger.Logger
}

func NewMQTTSink(pub Publisher, prefix string, log *logger.Logger) *MQTTSink {
	if log == nil {
		log = logger.Nop()
	}
	return &MQTTSink{
		pub:    pub,
		prefix: prefix,
		queue:  make(chan message, queueSize),
		log:    log,
	}
}

func (s *MQTTSink) topic(name string) string {
	return s.prefix + "/" + name
}

func (s *MQTTSink) SensorUpdated(r models.SensorReading, at time.Time) {
	s.enqueue(topicTelemetry, telemetryPayload{Sensor: &r, RecordedAt: at})
}

func (s *MQTTSink) WeatherUpdated(w models.WeatherReading, at time.Time) {
	s.enqueue(topicWeather, telemetryPayload{Weather: &w, RecordedAt: at})
}

func (s *MQTTSink) enqueue(name string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.log.Errorw("mqtt_marshal_failed", "topic", name, "err", err)
		return
	}
	select {
	case s.queue <- message{topic: s.topic(name), payload: payload}:
	default:
		s.log.Warnw("mqtt_queue_full", "topic", name)
	}
}

// Run publishes queued telemetry and every notification from src until ctx
// is cancelled, then closes the publisher.
func (s *MQTTSink) Run(ctx context.Context, src NotificationSource) {
	notes, cancel := src.SubscribeNotifications()
	defer cancel()
	defer s.pub.Close()

	for {
		select {
		case <-ctx.Done():
			s.log.Infow("mqtt_sink_stopped")
			return
		case n, ok := <-notes:
			if !ok {
				return
			}
			s.enqueue(topicNotifications, n)
		case m := <-s.queue:
			if err := s.pub.Publish(m.topic, m.payload); err != nil {
				s.log.Errorw("mqtt_publish_failed", "topic", m.topic, "err", err)
			}
		}
	}
}
