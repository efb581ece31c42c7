package model

import "fmt"

// ErrorKind classifies a failed backend call by its response shape.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTimeout
	KindNetworkUnreachable
	KindUnauthorized
	KindUnprocessableEntity
	KindServerError
)

// String returns a readable kind name for logs.
func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	case KindServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// APIError is the classified outcome of a failed backend call.
// StatusCode is zero when no response was received. UserMessage is
// always set and safe to surface to the user.
type APIError struct {
	Kind        ErrorKind
	StatusCode  int
	UserMessage string
	Raw         error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error %s (status %d): %s", e.Kind, e.StatusCode, e.UserMessage)
	}
	return fmt.Sprintf("api error %s: %s", e.Kind, e.UserMessage)
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Raw
}
