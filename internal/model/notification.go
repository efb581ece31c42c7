package model

import "time"

// NotificationKind is the visual category of a transient notification.
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient user-facing message. IDs are assigned
// from a monotonically increasing counter and never reused.
type Notification struct {
	ID       int64
	Message  string
	Kind     NotificationKind
	Duration time.Duration
}
