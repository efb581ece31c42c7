package model

import "time"

// Role is the closed set of user roles known to the backend.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserProfile represents the authenticated user as returned by the backend.
// A profile is immutable once fetched; a re-fetch replaces it wholesale.
type UserProfile struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
