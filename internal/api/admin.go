package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Admin calls the admin-only feedback management endpoints.
type Admin struct {
	pipeline *Pipeline
}

// NewAdmin creates an Admin client over the given pipeline.
func NewAdmin(pipeline *Pipeline) *Admin {
	return &Admin{pipeline: pipeline}
}

type statusUpdateRequest struct {
	Status model.FeedbackStatus `json:"status"`
}

type categoryUpdateRequest struct {
	CategoryID int `json:"category_id"`
}

type tagsUpdateRequest struct {
	TagIDs []int `json:"tag_ids"`
}

type respondRequest struct {
	Message string `json:"message"`
}

// List lists all feedback across users.
func (a *Admin) List(ctx context.Context, filter ListFilter) (model.FeedbackList, error) {
	var list model.FeedbackList
	err := a.pipeline.Do(ctx, http.MethodGet, "/admin/feedback", filter.query(), nil, &list)
	if err != nil {
		return model.FeedbackList{}, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}

// UpdateStatus moves a feedback item to a new lifecycle status.
func (a *Admin) UpdateStatus(ctx context.Context, id int, status model.FeedbackStatus) (model.Feedback, error) {
	var updated model.Feedback
	err := a.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/feedback/%d/status", id), nil, statusUpdateRequest{Status: status}, &updated)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to update status of feedback %d: %w", id, err)
	}
	return updated, nil
}

// UpdateCategory assigns a feedback item to a category.
func (a *Admin) UpdateCategory(ctx context.Context, id, categoryID int) (model.Feedback, error) {
	var updated model.Feedback
	err := a.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/feedback/%d/category", id), nil, categoryUpdateRequest{CategoryID: categoryID}, &updated)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to update category of feedback %d: %w", id, err)
	}
	return updated, nil
}

// UpdateTags replaces the tag set of a feedback item.
func (a *Admin) UpdateTags(ctx context.Context, id int, tagIDs []int) (model.Feedback, error) {
	var updated model.Feedback
	err := a.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/feedback/%d/tags", id), nil, tagsUpdateRequest{TagIDs: tagIDs}, &updated)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to update tags of feedback %d: %w", id, err)
	}
	return updated, nil
}

// Respond attaches an admin reply to a feedback item.
func (a *Admin) Respond(ctx context.Context, id int, message string) (model.AdminResponse, error) {
	var response model.AdminResponse
	err := a.pipeline.Do(ctx, http.MethodPost, fmt.Sprintf("/admin/feedback/%d/respond", id), nil, respondRequest{Message: message}, &response)
	if err != nil {
		return model.AdminResponse{}, fmt.Errorf("failed to respond to feedback %d: %w", id, err)
	}
	return response, nil
}
