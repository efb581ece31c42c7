package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Categories calls the category CRUD endpoints.
type Categories struct {
	pipeline *Pipeline
}

// NewCategories creates a Categories client over the given pipeline.
func NewCategories(pipeline *Pipeline) *Categories {
	return &Categories{pipeline: pipeline}
}

type nameRequest struct {
	Name string `json:"name"`
}

// List returns all categories.
func (c *Categories) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.pipeline.Do(ctx, http.MethodGet, "/categories/", nil, nil, &categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create adds a category.
func (c *Categories) Create(ctx context.Context, name string) (model.Category, error) {
	var created model.Category
	err := c.pipeline.Do(ctx, http.MethodPost, "/categories/", nil, nameRequest{Name: name}, &created)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// Update renames a category.
func (c *Categories) Update(ctx context.Context, id int, name string) (model.Category, error) {
	var updated model.Category
	err := c.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, nameRequest{Name: name}, &updated)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a category.
func (c *Categories) Delete(ctx context.Context, id int) error {
	err := c.pipeline.Do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}

// Tags calls the tag CRUD endpoints.
type Tags struct {
	pipeline *Pipeline
}

// NewTags creates a Tags client over the given pipeline.
func NewTags(pipeline *Pipeline) *Tags {
	return &Tags{pipeline: pipeline}
}

// List returns all tags.
func (t *Tags) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := t.pipeline.Do(ctx, http.MethodGet, "/tags/", nil, nil, &tags)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Create adds a tag.
func (t *Tags) Create(ctx context.Context, name string) (model.Tag, error) {
	var created model.Tag
	err := t.pipeline.Do(ctx, http.MethodPost, "/tags/", nil, nameRequest{Name: name}, &created)
	if err != nil {
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

// Update renames a tag.
func (t *Tags) Update(ctx context.Context, id int, name string) (model.Tag, error) {
	var updated model.Tag
	err := t.pipeline.Do(ctx, http.MethodPut, fmt.Sprintf("/tags/%d", id), nil, nameRequest{Name: name}, &updated)
	if err != nil {
		return model.Tag{}, fmt.Errorf("failed to update tag %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a tag.
func (t *Tags) Delete(ctx context.Context, id int) error {
	err := t.pipeline.Do(ctx, http.MethodDelete, fmt.Sprintf("/tags/%d", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	return nil
}
