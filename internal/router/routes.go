package router

import "github.com/danimarcos10/feedback-platform/internal/model"

// Navigable routes.
const (
	RouteRoot      = "/"
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
	RouteSubmit    = "/submit"
	RouteAdmin     = "/admin"
	RouteAnalytics = "/admin/analytics"
)

// Table maps each navigable route to its access requirements.
type Table map[string]model.RouteMeta

// DefaultTable returns the application routing table. The root route
// is not listed: it always resolves to the session's landing route.
func DefaultTable() Table {
	return Table{
		RouteLogin:     {Guest: true},
		RouteRegister:  {Guest: true},
		RouteDashboard: {RequiresAuth: true, Role: model.RoleUser},
		RouteSubmit:    {RequiresAuth: true, Role: model.RoleUser},
		RouteAdmin:     {RequiresAuth: true, Role: model.RoleAdmin},
		RouteAnalytics: {RequiresAuth: true, Role: model.RoleAdmin},
	}
}
