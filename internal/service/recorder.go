package service

import (
	"context"
	"errors"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/metrics"
	"agrismart/internal/models"
	"agrismart/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

const (
	DefaultRecorderQueue = 256

	breakerFails   = 5
	breakerOpen    = 10 * time.Second
	breakerWindow  = 60 * time.Second
	flushTimeout   = 2 * time.Second
	maxRetryWindow = 5 * time.Second
)

// EventSink accepts audit events. Record must not block.
type EventSink interface {
	Record(ev models.DashboardEvent)
}

type discardSink struct{}

func (discardSink) Record(models.DashboardEvent) {}

type writeJob struct {
	kind string
	run  func(ctx context.Context) error
}

// Recorder persists audit events and sensor history off the hot path.
// Writes are queued, retried with exponential backoff and guarded by a
// circuit breaker; a full queue drops the write.
type Recorder struct {
	events   repository.EventRepo
	readings repository.ReadingRepo

	queue      chan writeJob
	breaker    *gobreaker.CircuitBreaker
	newBackOff func() backoff.BackOff

	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewRecorder(events repository.EventRepo, readings repository.ReadingRepo, m *metrics.Metrics, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	r := &Recorder{
		events:   events,
		readings: readings,
		queue:    make(chan writeJob, DefaultRecorderQueue),
		metrics:  m,
		log:      log,
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 50 * time.Millisecond
			bo.MaxElapsedTime = maxRetryWindow
			return bo
		},
	}
	r.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "event-store",
		Interval: breakerWindow,
		Timeout:  breakerOpen,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= breakerFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("breaker_state_change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return r
}

// Record queues ev for persistence.
func (r *Recorder) Record(ev models.DashboardEvent) {
	r.enqueue(writeJob{
		kind: "event",
		run: func(ctx context.Context) error {
			return r.events.Append(ctx, ev)
		},
	})
}

// SensorUpdated appends the reading to the history table.
func (r *Recorder) SensorUpdated(reading models.SensorReading, at time.Time) {
	r.enqueue(writeJob{
		kind: "reading",
		run: func(ctx context.Context) error {
			return r.readings.Append(ctx, reading, at)
		},
	})
}

func (r *Recorder) WeatherUpdated(w models.WeatherReading, at time.Time) {
	r.Record(models.DashboardEvent{
		OccurredAt:  at,
		Type:        models.EventWeatherTick,
		Description: "Weather updated",
		Metadata:    w,
	})
}

// Follow records every notification pushed to feed until ctx is done.
func (r *Recorder) Follow(ctx context.Context, feed *NotificationFeed) {
	ch, cancel := feed.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			r.Record(models.DashboardEvent{
				OccurredAt:  n.CreatedAt,
				Type:        models.EventNotification,
				Description: n.Message,
				Metadata: map[string]any{
					"notification_id": n.ID,
					"severity":        string(n.Severity),
					"label":           n.TimestampLabel,
				},
			})
		}
	}
}

func (r *Recorder) enqueue(j writeJob) {
	select {
	case r.queue <- j:
	default:
		r.metrics.EventDropped()
		r.log.Warnw("recorder_queue_full", "kind", j.kind)
	}
}

// Run drains the queue until ctx is cancelled, then flushes what is left.
func (r *Recorder) Run(ctx context.Context) {
	r.log.Infow("recorder_started", "queue", cap(r.queue))
	for {
		select {
		case <-ctx.Done():
			r.flush()
			r.log.Infow("recorder_stopped")
			return
		case j := <-r.queue:
			r.persist(ctx, j)
		}
	}
}

func (r *Recorder) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	for {
		select {
		case j := <-r.queue:
			r.persist(ctx, j)
		default:
			return
		}
	}
}

func (r *Recorder) persist(ctx context.Context, j writeJob) {
	op := func() error {
		_, err := r.breaker.Execute(func() (interface{}, error) {
			return nil, j.run(ctx)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(op, backoff.WithContext(r.newBackOff(), ctx)); err != nil {
		r.metrics.EventWriteFailed()
		r.log.Errorw("recorder_write_failed", "kind", j.kind, "err", err)
	}
}
