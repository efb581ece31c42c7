package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/danimarcos10/feedback-platform/internal/logger"
	"github.com/danimarcos10/feedback-platform/internal/metrics"
	"github.com/danimarcos10/feedback-platform/internal/model"
)

// requestTimeout bounds every backend call. Fixed, not configurable.
const requestTimeout = 10 * time.Second

// TokenSource supplies the current bearer token, if any. The session
// store satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// InvalidationSubscriber receives the session-invalidated event the
// pipeline emits on every 401 response. Subscribers cannot suppress
// the event or the classified error returned to the caller.
type InvalidationSubscriber interface {
	SessionInvalidated()
}

// Pipeline wraps every outbound backend call: it attaches the bearer
// credential, enforces the fixed timeout, records request metadata,
// and classifies failures.
type Pipeline struct {
	base    *url.URL
	client  *http.Client
	logger  *logger.Logger
	metrics metrics.Recorder
	limiter *rate.Limiter

	mu     sync.RWMutex
	tokens TokenSource
	subs   []InvalidationSubscriber
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMetrics attaches a metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(p *Pipeline) {
		p.metrics = r
	}
}

// WithRateLimit throttles outbound calls. Zero or negative rps leaves
// the pipeline unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(p *Pipeline) {
		if rps > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// New creates a Pipeline for the given backend base address.
func New(baseURL string, logger *logger.Logger, opts ...Option) (*Pipeline, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	p := &Pipeline{
		base:   base,
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// BaseURL returns the configured backend address.
func (p *Pipeline) BaseURL() string {
	return p.base.String()
}

// BindTokenSource attaches the credential source. Separate from New
// because the session store is constructed after the pipeline.
func (p *Pipeline) BindTokenSource(ts TokenSource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens = ts
}

// Subscribe registers a subscriber for session-invalidated events.
func (p *Pipeline) Subscribe(sub InvalidationSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, sub)
}

// Do performs a JSON request against the backend. body, when non-nil,
// is JSON-encoded; out, when non-nil, receives the decoded 2xx
// response body.
func (p *Pipeline) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	return p.do(ctx, method, path, query, reader, contentType, out)
}

// DoForm performs a form-encoded request. Used by the credential
// exchange, which the backend accepts as a URL-encoded form only.
func (p *Pipeline) DoForm(ctx context.Context, method, path string, form url.Values, out any) error {
	return p.do(ctx, method, path, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (p *Pipeline) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("failed to pass rate limiter: %w", err)
		}
	}

	target := p.base.ResolveReference(&url.URL{Path: path})
	if query != nil {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if tok, ok := p.token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	p.logger.Debug("API request started",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := p.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		apiErr := classifyTransport(err, p.base.String())
		if p.metrics != nil {
			p.metrics.RecordFailure(apiErr.Kind)
		}
		p.logger.Error("API request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"kind", apiErr.Kind.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error())
		return apiErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if p.metrics != nil {
		p.metrics.RecordRequest(method, path, resp.StatusCode, duration)
	}
	p.logger.Info("API request completed",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds())

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return nil
	}

	apiErr := classifyStatus(resp.StatusCode, respBody)
	if p.metrics != nil {
		p.metrics.RecordFailure(apiErr.Kind)
	}
	p.logger.Error("API request rejected",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"kind", apiErr.Kind.String(),
		"message", apiErr.UserMessage)

	if apiErr.Kind == model.KindUnauthorized {
		p.notifyInvalidated()
	}

	return apiErr
}

func (p *Pipeline) token() (string, bool) {
	p.mu.RLock()
	ts := p.tokens
	p.mu.RUnlock()

	if ts == nil {
		return "", false
	}
	tok, ok := ts.Token()
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

func (p *Pipeline) notifyInvalidated() {
	p.mu.RLock()
	subs := make([]InvalidationSubscriber, len(p.subs))
	copy(subs, p.subs)
	p.mu.RUnlock()

	for _, sub := range subs {
		sub.SessionInvalidated()
	}
}
