package notify

import (
	"sync"
	"time"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Default display durations per notification kind.
const (
	DefaultDuration      = 4 * time.Second
	DefaultErrorDuration = 5 * time.Second
)

// Queue holds transient notifications in insertion order. IDs come
// from a monotonically increasing counter and are never reused, so a
// timer firing after a manual dismissal can never remove a different
// notification. The queue is process-volatile; nothing is persisted.
type Queue struct {
	mu     sync.Mutex
	nextID int64
	items  []model.Notification
	timers map[int64]*time.Timer
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{timers: make(map[int64]*time.Timer)}
}

// Add appends a notification and returns its id immediately. A
// positive duration schedules an automatic removal that far in the
// future; zero or negative keeps the notification until dismissed.
func (q *Queue) Add(message string, kind model.NotificationKind, duration time.Duration) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.items = append(q.items, model.Notification{
		ID:       id,
		Message:  message,
		Kind:     kind,
		Duration: duration,
	})

	if duration > 0 {
		q.timers[id] = time.AfterFunc(duration, func() {
			q.Remove(id)
		})
	}

	return id
}

// Info adds an info notification with the default duration.
func (q *Queue) Info(message string) int64 {
	return q.Add(message, model.NotifyInfo, DefaultDuration)
}

// Success adds a success notification with the default duration.
func (q *Queue) Success(message string) int64 {
	return q.Add(message, model.NotifySuccess, DefaultDuration)
}

// Error adds an error notification, displayed slightly longer.
func (q *Queue) Error(message string) int64 {
	return q.Add(message, model.NotifyError, DefaultErrorDuration)
}

// Remove dismisses the notification with the given id and cancels its
// expiry timer. Removing an absent id is a no-op, which covers a timer
// firing after a manual dismissal.
func (q *Queue) Remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}

	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Toasts returns a snapshot of the queue in insertion order.
func (q *Queue) Toasts() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := make([]model.Notification, len(q.items))
	copy(snapshot, q.items)
	return snapshot
}

// Close stops all pending expiry timers and drops the queue contents.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.items = nil
}
