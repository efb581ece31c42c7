package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// detailEnvelope is the backend's error body: {"detail": ...} where
// detail is either a plain message or a list of validation items.
type detailEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

// validationItem is one entry of a 422 validation detail list.
type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// classifyTransport maps a failure with no response received to either
// a timeout or a network-unreachable error. baseURL names the backend
// in the user-facing message.
func classifyTransport(err error, baseURL string) *model.APIError {
	kind := model.KindNetworkUnreachable
	msg := "Cannot connect to server. Please ensure the backend is running at " + baseURL

	var ue *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
		kind = model.KindTimeout
		msg = "Request timed out. Please check if the server is running."
	}

	return &model.APIError{
		Kind:        kind,
		UserMessage: msg,
		Raw:         err,
	}
}

// classifyStatus maps a non-2xx response to the error taxonomy. The
// mapping is a pure function of status code and body.
func classifyStatus(statusCode int, body []byte) *model.APIError {
	apiErr := &model.APIError{StatusCode: statusCode}

	switch statusCode {
	case http.StatusUnauthorized:
		apiErr.Kind = model.KindUnauthorized
		apiErr.UserMessage = "Session expired. Please login again."
	case http.StatusUnprocessableEntity:
		apiErr.Kind = model.KindUnprocessableEntity
		apiErr.UserMessage = validationMessage(body)
	case http.StatusInternalServerError:
		apiErr.Kind = model.KindServerError
		apiErr.UserMessage = "Server error. Please check the backend logs."
	default:
		apiErr.Kind = model.KindUnknown
		apiErr.UserMessage = fallbackMessage(statusCode, body)
	}

	return apiErr
}

// validationMessage renders a 422 detail. A detail list becomes the
// items joined by ", ", each rendered as "<dot-joined loc>: <msg>".
func validationMessage(body []byte) string {
	var envelope detailEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return "Validation error"
	}

	var items []validationItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%s: %s", joinLoc(item.Loc), item.Msg))
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
		return "Validation error"
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil && detail != "" {
		return detail
	}

	return "Validation error"
}

// joinLoc renders a validation location path. Elements may be field
// names or array indices, so each is formatted generically.
func joinLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for _, elem := range loc {
		switch v := elem.(type) {
		case float64:
			parts = append(parts, fmt.Sprintf("%d", int(v)))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, ".")
}

// fallbackMessage prefers the backend-supplied detail, then the raw
// body, then the standard status text.
func fallbackMessage(statusCode int, body []byte) string {
	var envelope detailEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(envelope.Detail, &detail); err == nil && detail != "" {
			return detail
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(statusCode)
}
