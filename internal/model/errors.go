package model

import "errors"

var (
	// ErrNotFound indicates a missing key in the persistent store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a rejected email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated indicates an operation that needs a session
	// was called without one.
	ErrNotAuthenticated = errors.New("not authenticated")
)
