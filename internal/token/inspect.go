package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend's access token claims the client
// cares about. The backend signs with HS256 and puts the user ID in
// "sub"; the client never holds the signing secret, so claims are read
// without signature verification and only used for local decisions
// (dropping an already-expired persisted token).
type Claims struct {
	jwt.RegisteredClaims
}

// Inspect decodes an access token without verifying its signature.
func Inspect(tokenString string) (Claims, error) {
	claims := Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return Claims{}, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token's exp claim has passed. A token
// without an exp claim is treated as unexpired.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}
