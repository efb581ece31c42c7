package router

import "github.com/danimarcos10/feedback-platform/internal/model"

// Decision is the outcome of evaluating a navigation attempt.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Allow permits the navigation.
func Allow() Decision {
	return Decision{Allowed: true}
}

// RedirectTo denies the navigation and names the route to go to
// instead.
func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Evaluate applies the access rules to a session and a route's
// declared requirements. Rules are checked in order and the first
// match wins:
//
//  1. auth-only route, anonymous session: redirect to login
//  2. guest-only route, authenticated session: redirect to the
//     role-dependent landing route
//  3. admin route, non-admin session: redirect to the user dashboard
//  4. user route, admin session: redirect to the admin dashboard
//  5. otherwise: allow
//
// The landing route in rule 2 is resolved from the session at every
// evaluation, never cached, because the role changes across logins.
func Evaluate(session model.Session, meta model.RouteMeta) Decision {
	switch {
	case meta.RequiresAuth && !session.IsAuthenticated():
		return RedirectTo(RouteLogin)
	case meta.Guest && session.IsAuthenticated():
		return RedirectTo(Landing(session))
	case meta.Role == model.RoleAdmin && !session.IsAdmin():
		return RedirectTo(RouteDashboard)
	case meta.Role == model.RoleUser && session.IsAdmin():
		return RedirectTo(RouteAdmin)
	default:
		return Allow()
	}
}

// Landing returns the default landing route for a session: admins land
// on the admin dashboard, everyone else on the user dashboard.
func Landing(session model.Session) string {
	if session.IsAdmin() {
		return RouteAdmin
	}
	return RouteDashboard
}
