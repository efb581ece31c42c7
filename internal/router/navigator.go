package router

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danimarcos10/feedback-platform/internal/logger"
	"github.com/danimarcos10/feedback-platform/internal/model"
)

var (
	// ErrUnknownRoute indicates a navigation target outside the table.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrRedirectLoop indicates guard redirects that never settle.
	ErrRedirectLoop = errors.New("redirect loop")
)

// redirect chains settle within two hops on the default table
const maxRedirects = 5

// SessionReader exposes the session view the guard evaluates against.
type SessionReader interface {
	Snapshot() model.Session
}

// Navigator holds the routing table and the current location, and
// applies guard decisions to navigation attempts. It also subscribes
// to the pipeline's session-invalidated event to move to the login
// route when a session dies mid-use.
type Navigator struct {
	table   Table
	session SessionReader
	logger  *logger.Logger

	mu      sync.Mutex
	current string
}

// NewNavigator creates a Navigator starting on the login route.
func NewNavigator(table Table, session SessionReader, logger *logger.Logger) *Navigator {
	return &Navigator{
		table:   table,
		session: session,
		logger:  logger,
		current: RouteLogin,
	}
}

// Navigate attempts to move to path, following guard redirects until a
// route allows the session. Returns the route actually landed on.
func (n *Navigator) Navigate(path string) (string, error) {
	for range maxRedirects {
		if path == RouteRoot {
			path = Landing(n.session.Snapshot())
			continue
		}

		meta, ok := n.table[path]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownRoute, path)
		}

		decision := Evaluate(n.session.Snapshot(), meta)
		if decision.Allowed {
			n.setCurrent(path)
			return path, nil
		}

		n.logger.Debug("Navigator: redirected",
			"from", path,
			"to", decision.Redirect)
		path = decision.Redirect
	}

	return "", fmt.Errorf("%w: starting from %s", ErrRedirectLoop, path)
}

// Current returns the route the navigator last landed on.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// SessionInvalidated implements the pipeline's invalidation
// subscriber: an invalidated session always lands on the login route.
func (n *Navigator) SessionInvalidated() {
	n.setCurrent(RouteLogin)
	n.logger.Info("Navigator: session invalidated, moved to login")
}

func (n *Navigator) setCurrent(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
}
