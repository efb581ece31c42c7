package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Feedback calls the user-facing feedback endpoints.
type Feedback struct {
	pipeline *Pipeline
}

// NewFeedback creates a Feedback client over the given pipeline.
func NewFeedback(pipeline *Pipeline) *Feedback {
	return &Feedback{pipeline: pipeline}
}

// FeedbackCreate is the payload for submitting new feedback.
type FeedbackCreate struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int   `json:"category_id,omitempty"`
	TagIDs     []int  `json:"tag_ids"`
}

// FeedbackUpdate is the payload for editing own feedback. Nil fields
// are left unchanged.
type FeedbackUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ListFilter narrows a feedback listing. Zero values are omitted.
type ListFilter struct {
	Status     model.FeedbackStatus
	CategoryID int
	Page       int
	PageSize   int
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.Itoa(f.CategoryID))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return q
}

// Create submits a new feedback item.
func (f *Feedback) Create(ctx context.Context, payload FeedbackCreate) (model.Feedback, error) {
	var created model.Feedback
	err := f.pipeline.Do(ctx, http.MethodPost, "/feedback/", nil, payload, &created)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}
	return created, nil
}

// Mine lists the caller's own feedback.
func (f *Feedback) Mine(ctx context.Context, filter ListFilter) (model.FeedbackList, error) {
	var list model.FeedbackList
	err := f.pipeline.Do(ctx, http.MethodGet, "/feedback/mine", filter.query(), nil, &list)
	if err != nil {
		return model.FeedbackList{}, fmt.Errorf("failed to list own feedback: %w", err)
	}
	return list, nil
}

// Get fetches one feedback item with responses and status history.
func (f *Feedback) Get(ctx context.Context, id int) (model.FeedbackDetail, error) {
	var detail model.FeedbackDetail
	err := f.pipeline.Do(ctx, http.MethodGet, fmt.Sprintf("/feedback/%d", id), nil, nil, &detail)
	if err != nil {
		return model.FeedbackDetail{}, fmt.Errorf("failed to get feedback %d: %w", id, err)
	}
	return detail, nil
}

// Update edits the caller's own feedback item.
func (f *Feedback) Update(ctx context.Context, id int, payload FeedbackUpdate) (model.Feedback, error) {
	var updated model.Feedback
	err := f.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/feedback/%d", id), nil, payload, &updated)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to update feedback %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes the caller's own feedback item.
func (f *Feedback) Delete(ctx context.Context, id int) error {
	err := f.pipeline.Do(ctx, http.MethodDelete, fmt.Sprintf("/feedback/%d", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete feedback %d: %w", id, err)
	}
	return nil
}
