package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danimarcos10/feedback-platform/internal/logger"
	"github.com/danimarcos10/feedback-platform/internal/model"
	"github.com/danimarcos10/feedback-platform/internal/token"
)

// AuthAPI is the slice of the backend the store needs: credential
// exchange, account creation and profile fetch.
type AuthAPI interface {
	Register(ctx context.Context, email, password string) (model.UserProfile, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (model.UserProfile, error)
}

// Store owns the authentication state of the client. All mutation goes
// through its methods; the state is mirrored into the persistent KV
// after every change and read back via Restore at startup.
type Store struct {
	api    AuthAPI
	kv     model.KV
	logger *logger.Logger

	mu    sync.Mutex
	state model.SessionState
	token string
	user  *model.UserProfile
}

// NewStore creates a Store in the anonymous state.
func NewStore(api AuthAPI, kv model.KV, logger *logger.Logger) *Store {
	return &Store{
		api:    api,
		kv:     kv,
		logger: logger,
		state:  model.StateAnonymous,
	}
}

// Restore loads persisted session state. A persisted token whose exp
// claim has already passed is discarded together with the profile, so
// the client starts anonymous instead of holding a dead credential.
func (s *Store) Restore(ctx context.Context) error {
	tok, err := s.kv.Get(ctx, model.KeyToken)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read persisted token: %w", err)
	}

	claims, err := token.Inspect(tok)
	if err != nil || claims.Expired(time.Now()) {
		s.logger.Info("Session store: discarding persisted token",
			"expired", err == nil)
		return s.Logout(ctx)
	}

	var user *model.UserProfile
	raw, err := s.kv.Get(ctx, model.KeyUser)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to read persisted user: %w", err)
	}
	if err == nil {
		profile := model.UserProfile{}
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return fmt.Errorf("failed to decode persisted user: %w", err)
		}
		user = &profile
	}

	s.mu.Lock()
	s.token = tok
	s.user = user
	s.state = model.StateAuthenticated
	s.mu.Unlock()

	s.logger.Info("Session store: session restored",
		"has_profile", user != nil)

	return nil
}

// Login exchanges credentials for a token, then fetches the profile.
// The two steps are atomic from the caller's point of view: a profile
// fetch failure rolls the token back and the store stays anonymous.
func (s *Store) Login(ctx context.Context, email, password string) (model.UserProfile, error) {
	s.logger.Debug("Session store: login started", "email", email)

	s.mu.Lock()
	s.state = model.StateAuthenticating
	s.mu.Unlock()

	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.setAnonymous()
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == model.KindUnauthorized {
			return model.UserProfile{}, fmt.Errorf("%w: %s", model.ErrInvalidCredentials, email)
		}
		return model.UserProfile{}, fmt.Errorf("failed to exchange credentials: %w", err)
	}

	if err := s.setToken(ctx, tok); err != nil {
		s.setAnonymous()
		return model.UserProfile{}, err
	}

	profile, err := s.api.Me(ctx)
	if err != nil {
		if rollbackErr := s.Logout(ctx); rollbackErr != nil {
			s.logger.Error("Session store: failed to roll back token",
				"error", rollbackErr.Error())
		}
		return model.UserProfile{}, fmt.Errorf("failed to fetch profile after login: %w", err)
	}

	if err := s.setUser(ctx, profile); err != nil {
		if rollbackErr := s.Logout(ctx); rollbackErr != nil {
			s.logger.Error("Session store: failed to roll back token",
				"error", rollbackErr.Error())
		}
		return model.UserProfile{}, err
	}

	s.mu.Lock()
	s.state = model.StateAuthenticated
	s.mu.Unlock()

	s.logger.Info("Session store: login completed",
		"email", email,
		"role", string(profile.Role))

	return profile, nil
}

// Register creates an account, then logs in with the same credentials.
// Failures from either step are surfaced unmodified.
func (s *Store) Register(ctx context.Context, email, password string) (model.UserProfile, error) {
	s.logger.Debug("Session store: registration started", "email", email)

	if _, err := s.api.Register(ctx, email, password); err != nil {
		return model.UserProfile{}, err
	}

	return s.Login(ctx, email, password)
}

// Logout clears the session in memory and in the persistent KV. It is
// idempotent: calling it on an anonymous session performs the same
// writes and leaves state unchanged.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = model.StateAnonymous
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, model.KeyToken); err != nil {
		return fmt.Errorf("failed to clear persisted token: %w", err)
	}
	if err := s.kv.Delete(ctx, model.KeyUser); err != nil {
		return fmt.Errorf("failed to clear persisted user: %w", err)
	}

	s.logger.Info("Session store: logged out")

	return nil
}

// FetchUser re-fetches the profile for the held token. Without a token
// it is a no-op. Only an unauthorized rejection invalidates the
// session; a transient network or server failure leaves it intact.
func (s *Store) FetchUser(ctx context.Context) (*model.UserProfile, error) {
	if _, ok := s.Token(); !ok {
		return nil, nil
	}

	profile, err := s.api.Me(ctx)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == model.KindUnauthorized {
			if logoutErr := s.Logout(ctx); logoutErr != nil {
				s.logger.Error("Session store: failed to clear invalid session",
					"error", logoutErr.Error())
			}
		}
		return nil, fmt.Errorf("failed to refresh profile: %w", err)
	}

	if err := s.setUser(ctx, profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SessionInvalidated implements the pipeline's invalidation subscriber:
// any 401 response forces a logout, whichever call triggered it.
func (s *Store) SessionInvalidated() {
	if err := s.Logout(context.Background()); err != nil {
		s.logger.Error("Session store: failed to clear invalidated session",
			"error", err.Error())
	}
}

// Token returns the current bearer token. Satisfies the pipeline's
// token source.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// IsAdmin reports whether the resolved profile has the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == model.RoleAdmin
}

// State returns the current lifecycle state.
func (s *Store) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a point-in-time copy of the session for the route
// guard. The profile is copied so callers cannot mutate store state.
func (s *Store) Snapshot() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := model.Session{Token: s.token}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

// setToken stores the token in memory and the KV. The stale profile is
// dropped in the same step so a new token is never paired with the
// previous user.
func (s *Store) setToken(ctx context.Context, tok string) error {
	s.mu.Lock()
	prev := s.token
	s.token = tok
	s.user = nil
	s.mu.Unlock()

	if err := s.kv.Set(ctx, model.KeyToken, tok); err != nil {
		s.mu.Lock()
		s.token = prev
		s.mu.Unlock()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// setUser stores the profile in memory and the KV.
func (s *Store) setUser(ctx context.Context, profile model.UserProfile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.mu.Lock()
	user := profile
	s.user = &user
	s.mu.Unlock()

	if err := s.kv.Set(ctx, model.KeyUser, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// setAnonymous leaves the authenticating state after a failed login.
// A still-held token (failed re-login over an existing session) keeps
// the store authenticated.
func (s *Store) setAnonymous() {
	s.mu.Lock()
	if s.token == "" {
		s.state = model.StateAnonymous
	} else {
		s.state = model.StateAuthenticated
	}
	s.mu.Unlock()
}
