package model

// OverviewStats summarizes the feedback backlog.
type OverviewStats struct {
	TotalFeedback            int      `json:"total_feedback"`
	OpenFeedback             int      `json:"open_feedback"`
	ResolvedFeedback         int      `json:"resolved_feedback"`
	AverageResolutionTimeHrs *float64 `json:"average_resolution_time_hours"`
}

// TimeseriesPoint is a per-day feedback count.
type TimeseriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TagCount ranks a tag by usage.
type TagCount struct {
	TagID   int    `json:"tag_id"`
	TagName string `json:"tag_name"`
	Count   int    `json:"count"`
}

// CategoryCount ranks a category by usage.
type CategoryCount struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}

// SentimentPoint is a per-day average sentiment sample.
type SentimentPoint struct {
	Date             string  `json:"date"`
	AverageSentiment float64 `json:"average_sentiment"`
	Count            int     `json:"count"`
}

// TopicCluster is one cluster from the backend's topic extraction.
type TopicCluster struct {
	ClusterID          int      `json:"cluster_id"`
	Label              string   `json:"label"`
	Keywords           []string `json:"keywords"`
	ExampleFeedbackIDs []int    `json:"example_feedback_ids"`
	ExampleTitles      []string `json:"example_titles"`
	Count              int      `json:"count"`
}
