package model

// RouteMeta declares the access requirements of a navigable route.
// A zero Role means the route has no role requirement. Static and
// read-only once the routing table is built.
type RouteMeta struct {
	RequiresAuth bool
	Guest        bool
	Role         Role
}
