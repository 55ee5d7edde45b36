package service

import (
	"context"
	"sync"
	"time"

	"agrismart/internal/models"
)

// seqRand replays vals in order and then repeats the last one.
type seqRand struct {
	mu   sync.Mutex
	vals []float64
	i    int
}

func newSeqRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.vals) == 0 {
		return 0
	}
	if r.i >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.i]
	r.i++
	return v
}

// constRand always returns v.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type pushed struct {
	Message  string
	Label    string
	Severity models.Severity
}

// recordingNotifier captures pushes without any feed semantics.
type recordingNotifier struct {
	mu    sync.Mutex
	items []pushed
}

func (n *recordingNotifier) Push(message, label string, sev models.Severity) models.NotificationEntry {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, pushed{Message: message, Label: label, Severity: sev})
	return models.NotificationEntry{Message: message, TimestampLabel: label, Severity: sev}
}

func (n *recordingNotifier) All() []pushed {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]pushed(nil), n.items...)
}

func (n *recordingNotifier) Count(message string) int {
	c := 0
	for _, p := range n.All() {
		if p.Message == message {
			c++
		}
	}
	return c
}

// fakeTimers hands out timers that only fire when the test says so.
type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	ft.timers = append(ft.timers, t)
	return t
}

// Fire runs timer i even if it was stopped, like a callback that already
// left the runtime timer queue before Stop.
func (ft *fakeTimers) Fire(i int) {
	ft.mu.Lock()
	t := ft.timers[i]
	ft.mu.Unlock()
	t.f()
}

func (ft *fakeTimers) Len() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return len(ft.timers)
}

// recordingSink collects audit events.
type recordingSink struct {
	mu     sync.Mutex
	events []models.DashboardEvent
}

func (s *recordingSink) Record(ev models.DashboardEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) Types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeReadingRepo struct {
	mu       sync.Mutex
	appended []models.ReadingSample
	samples  []models.ReadingSample
	gotLimit int
	err      error
}

func (f *fakeReadingRepo) Append(ctx context.Context, r models.SensorReading, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, models.ReadingSample{Reading: r, RecordedAt: at})
	return nil
}

func (f *fakeReadingRepo) Latest(ctx context.Context, limit int) ([]models.ReadingSample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotLimit = limit
	return f.samples, f.err
}

func (f *fakeReadingRepo) Appended() []models.ReadingSample {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ReadingSample(nil), f.appended...)
}

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
