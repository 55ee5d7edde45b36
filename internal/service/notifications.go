package service

import (
	"sync"
	"time"

	"agrismart/internal/metrics"
	"agrismart/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultFeedCapacity = 5
	DefaultUnreadCap    = 9

	subscriberBuffer = 16
)

// NotificationFeed is the newest-first alert list with a saturating unread counter.
type NotificationFeed struct {
	mu        sync.Mutex
	entries   []models.NotificationEntry
	unread    int
	capacity  int
	unreadCap int

	subs    map[int]chan models.NotificationEntry
	nextSub int

	now     func() time.Time
	metrics *metrics.Metrics
}

func NewNotificationFeed(m *metrics.Metrics) *NotificationFeed {
	return &NotificationFeed{
		entries:   make([]models.NotificationEntry, 0, DefaultFeedCapacity+1),
		capacity:  DefaultFeedCapacity,
		unreadCap: DefaultUnreadCap,
		subs:      make(map[int]chan models.NotificationEntry),
		now:       time.Now,
		metrics:   m,
	}
}

// Push inserts an entry at the head, evicts the oldest beyond capacity and
// bumps the unread counter (saturating). Subscribers that cannot keep up miss
// the entry; Push never blocks on them.
func (f *NotificationFeed) Push(message, timestampLabel string, severity models.Severity) models.NotificationEntry {
	entry := models.NotificationEntry{
		ID:             uuid.NewString(),
		Message:        message,
		TimestampLabel: timestampLabel,
		Severity:       severity,
		CreatedAt:      f.now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, models.NotificationEntry{})
	copy(f.entries[1:], f.entries)
	f.entries[0] = entry
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}

	f.unread = min(f.unread+1, f.unreadCap)
	f.metrics.NotificationPushed(string(severity), f.unread)

	for _, ch := range f.subs {
		select {
		case ch <- entry:
		default:
		}
	}
	return entry
}

// Entries returns a copy of the feed, newest first.
func (f *NotificationFeed) Entries() []models.NotificationEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.NotificationEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *NotificationFeed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

// MarkRead clears the unread counter. Entries stay in the feed.
func (f *NotificationFeed) MarkRead() {
	f.mu.Lock()
	f.unread = 0
	f.mu.Unlock()
	f.metrics.UnreadReset()
}

// Subscribe returns a channel receiving every entry pushed after the call,
// and a cancel func that closes it.
func (f *NotificationFeed) Subscribe() (<-chan models.NotificationEntry, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextSub
	f.nextSub++
	ch := make(chan models.NotificationEntry, subscriberBuffer)
	f.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			close(ch)
			f.mu.Unlock()
		})
	}
	return ch, cancel
}
