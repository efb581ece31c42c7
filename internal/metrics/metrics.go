package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Recorder is the interface the request pipeline reports through.
type Recorder interface {
	RecordRequest(method, path string, statusCode int, duration time.Duration)
	RecordFailure(kind model.ErrorKind)
}

// Collector is a prometheus-backed Recorder.
type Collector struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_client_requests_total",
			Help: "Backend requests by method and status code.",
		}, []string{"method", "status_code"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_client_failures_total",
			Help: "Classified request failures by error kind.",
		}, []string{"kind"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedback_client_request_seconds",
			Help:    "Backend request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.failures, c.latency)

	return c
}

// RecordRequest counts a completed request and observes its latency.
func (c *Collector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.latency.Observe(duration.Seconds())
}

// RecordFailure counts a classified failure.
func (c *Collector) RecordFailure(kind model.ErrorKind) {
	c.failures.WithLabelValues(kind.String()).Inc()
}
