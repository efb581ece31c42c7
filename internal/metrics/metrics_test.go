package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/feedback/mine", http.StatusOK, 50*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/feedback/mine", http.StatusOK, 30*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/auth/login", http.StatusUnauthorized, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("POST", "401")))

	count := testutil.CollectAndCount(c.latency, "feedback_client_request_seconds")
	assert.Equal(t, 1, count)
}

func TestCollector_RecordFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFailure(model.KindTimeout)
	c.RecordFailure(model.KindTimeout)
	c.RecordFailure(model.KindNetworkUnreachable)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.failures.WithLabelValues(model.KindTimeout.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues(model.KindNetworkUnreachable.String())))
}

func TestCollector_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/categories/", http.StatusOK, time.Millisecond)
	c.RecordFailure(model.KindServerError)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "feedback_client_requests_total")
	assert.Contains(t, names, "feedback_client_failures_total")
	assert.Contains(t, names, "feedback_client_request_seconds")
}
