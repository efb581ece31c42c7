package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Analytics calls the admin analytics endpoints.
type Analytics struct {
	pipeline *Pipeline
}

// NewAnalytics creates an Analytics client over the given pipeline.
func NewAnalytics(pipeline *Pipeline) *Analytics {
	return &Analytics{pipeline: pipeline}
}

type timeseriesResponse struct {
	Data []model.TimeseriesPoint `json:"data"`
}

type topTagsResponse struct {
	Data []model.TagCount `json:"data"`
}

type topCategoriesResponse struct {
	Data []model.CategoryCount `json:"data"`
}

type sentimentTrendsResponse struct {
	Data []model.SentimentPoint `json:"data"`
}

type topicsResponse struct {
	Clusters []model.TopicCluster `json:"clusters"`
}

// Overview fetches backlog summary statistics.
func (a *Analytics) Overview(ctx context.Context) (model.OverviewStats, error) {
	var stats model.OverviewStats
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/overview", nil, nil, &stats)
	if err != nil {
		return model.OverviewStats{}, fmt.Errorf("failed to fetch overview: %w", err)
	}
	return stats, nil
}

// Timeseries fetches per-day feedback counts over the given window.
func (a *Analytics) Timeseries(ctx context.Context, days int) ([]model.TimeseriesPoint, error) {
	var resp timeseriesResponse
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/timeseries", daysQuery(days), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeseries: %w", err)
	}
	return resp.Data, nil
}

// TopTags fetches the most used tags.
func (a *Analytics) TopTags(ctx context.Context, limit int) ([]model.TagCount, error) {
	var resp topTagsResponse
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/top-tags", limitQuery(limit), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top tags: %w", err)
	}
	return resp.Data, nil
}

// TopCategories fetches the most used categories.
func (a *Analytics) TopCategories(ctx context.Context, limit int) ([]model.CategoryCount, error) {
	var resp topCategoriesResponse
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/top-categories", limitQuery(limit), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top categories: %w", err)
	}
	return resp.Data, nil
}

// SentimentTrends fetches per-day sentiment averages.
func (a *Analytics) SentimentTrends(ctx context.Context, days int) ([]model.SentimentPoint, error) {
	var resp sentimentTrendsResponse
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/sentiment-trends", daysQuery(days), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentiment trends: %w", err)
	}
	return resp.Data, nil
}

// Topics fetches k clusters from the backend's topic extraction.
func (a *Analytics) Topics(ctx context.Context, k int) ([]model.TopicCluster, error) {
	q := url.Values{}
	if k > 0 {
		q.Set("k", strconv.Itoa(k))
	}
	var resp topicsResponse
	err := a.pipeline.Do(ctx, http.MethodGet, "/analytics/topics", q, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	return resp.Clusters, nil
}

func daysQuery(days int) url.Values {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	return q
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
