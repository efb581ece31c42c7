package model

import "context"

// KV keys under which client state is persisted between runs.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// KV defines the persistent key-value store holding client state.
// Writes are synchronous and last-writer-wins; a missing key is
// reported as ErrNotFound.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionState describes where the session store is in its lifecycle.
type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

// String returns a readable state name for logs.
func (s SessionState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is a point-in-time view of the authentication state.
// Invariant: User is non-nil only when Token is non-empty.
type Session struct {
	Token string
	User  *UserProfile
}

// IsAuthenticated reports whether the session holds a bearer token.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session belongs to an admin user.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == RoleAdmin
}
