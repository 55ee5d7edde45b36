package service

import (
	"sync"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/metrics"
	"agrismart/internal/models"
)

const (
	DefaultSprayAutoStop = 3 * time.Second

	msgSprayActivated = "Spray system activated"
	msgSprayCompleted = "Spray completed successfully"

	stopReasonManual = "manual"
	stopReasonAuto   = "auto"
)

// SprayController drives the IDLE/ACTIVE actuator.
// Lock order: SprayController before NotificationFeed.
type SprayController struct {
	mu         sync.Mutex
	state      models.SprayState
	generation uint64
	pending    Timer

	autoStop  time.Duration
	afterFunc AfterFunc
	notifier  Notifier
	sink      EventSink
	metrics   *metrics.Metrics
	log       *logger.Logger
	now       func() time.Time
}

func NewSprayController(autoStop time.Duration, afterFunc AfterFunc, notifier Notifier, sink EventSink, m *metrics.Metrics, log *logger.Logger) *SprayController {
	if autoStop <= 0 {
		autoStop = DefaultSprayAutoStop
	}
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	if sink == nil {
		sink = discardSink{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SprayController{
		state:     models.SprayIdle,
		autoStop:  autoStop,
		afterFunc: afterFunc,
		notifier:  notifier,
		sink:      sink,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

func (c *SprayController) State() models.SprayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Toggle activates an idle sprayer or stops an active one, returning the new state.
func (c *SprayController) Toggle() models.SprayState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.SprayActive {
		c.stopLocked(stopReasonManual)
		return c.state
	}

	c.state = models.SprayActive
	c.generation++
	gen := c.generation
	c.notifier.Push(msgSprayActivated, "now", models.SeveritySuccess)
	c.pending = c.afterFunc(c.autoStop, func() { c.autoStopFired(gen) })

	c.metrics.SprayStarted()
	c.sink.Record(models.DashboardEvent{
		OccurredAt:  c.now().UTC(),
		Type:        models.EventSprayStart,
		Description: msgSprayActivated,
		Metadata:    map[string]any{"generation": gen, "auto_stop_ms": c.autoStop.Milliseconds()},
	})
	c.log.Infow("spray_activated", "generation", gen, "auto_stop", c.autoStop.String())
	return c.state
}

// Stop ends an active spray. It reports false when the sprayer was already idle.
func (c *SprayController) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != models.SprayActive {
		return false
	}
	c.stopLocked(stopReasonManual)
	return true
}

func (c *SprayController) autoStopFired(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != models.SprayActive || c.generation != gen {
		c.log.Debugw("spray_stale_timer", "generation", gen, "current", c.generation)
		return
	}
	c.stopLocked(stopReasonAuto)
}

func (c *SprayController) stopLocked(reason string) {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.state = models.SprayIdle
	c.notifier.Push(msgSprayCompleted, "now", models.SeveritySuccess)

	c.metrics.SprayStopped(reason)
	c.sink.Record(models.DashboardEvent{
		OccurredAt:  c.now().UTC(),
		Type:        models.EventSprayStop,
		Description: msgSprayCompleted,
		Metadata:    map[string]any{"generation": c.generation, "reason": reason},
	})
	c.log.Infow("spray_stopped", "generation", c.generation, "reason", reason)
}
