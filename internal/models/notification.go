package models

import "time"

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityDanger  Severity = "danger"
)

// Icon returns the glyph a presentation layer shows next to the entry.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityWarning:
		return "⚠"
	case SeverityDanger:
		return "✖"
	default:
		return "ℹ"
	}
}

// NotificationEntry is a single alert shown in the feed.
type NotificationEntry struct {
	ID             string    `json:"id"`
	Message        string    `json:"message"`
	TimestampLabel string    `json:"timestamp_label"` // "now", "1 min ago", ...
	Severity       Severity  `json:"severity"`
	CreatedAt      time.Time `json:"created_at"`
}
