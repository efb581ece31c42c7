package model

import "time"

// FeedbackStatus is the backend's feedback lifecycle state.
type FeedbackStatus string

const (
	StatusNew        FeedbackStatus = "new"
	StatusTriaged    FeedbackStatus = "triaged"
	StatusInProgress FeedbackStatus = "in_progress"
	StatusResolved   FeedbackStatus = "resolved"
	StatusRejected   FeedbackStatus = "rejected"
)

// Category groups feedback items.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Tag labels feedback items.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is a single feedback item as returned by the backend.
type Feedback struct {
	ID             int            `json:"id"`
	UserID         int            `json:"user_id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	CategoryID     *int           `json:"category_id"`
	Status         FeedbackStatus `json:"status"`
	SentimentScore *float64       `json:"sentiment_score"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	ResolvedAt     *time.Time     `json:"resolved_at"`
	Category       *Category      `json:"category"`
	Tags           []Tag          `json:"tags"`
}

// FeedbackList is a paginated feedback listing.
type FeedbackList struct {
	Items    []Feedback `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// AdminResponse is an admin's reply attached to a feedback item.
type AdminResponse struct {
	ID         int       `json:"id"`
	FeedbackID int       `json:"feedback_id"`
	AdminID    int       `json:"admin_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusEvent records a feedback status transition.
type StatusEvent struct {
	ID         int       `json:"id"`
	FeedbackID int       `json:"feedback_id"`
	OldStatus  *string   `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  int       `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackDetail is a feedback item with its admin responses and
// status history.
type FeedbackDetail struct {
	Feedback
	AdminResponses []AdminResponse `json:"admin_responses"`
	StatusEvents   []StatusEvent   `json:"status_events"`
}
