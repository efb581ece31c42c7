package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspect_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := Inspect(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))
}

func TestInspect_IgnoresSignature(t *testing.T) {
	raw := signToken(t, jwt.RegisteredClaims{Subject: "42"})

	// flip the signature; decoding must still succeed
	tampered := raw[:len(raw)-4] + "AAAA"
	claims, err := Inspect(tampered)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}

func TestInspect_IgnoresExpiryAtDecode(t *testing.T) {
	raw := signToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	claims, err := Inspect(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("not-a-jwt")
	assert.ErrorContains(t, err, "failed to decode access token")
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		claims  Claims
		expired bool
	}{
		{
			name:    "future exp",
			claims:  Claims{jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}},
			expired: false,
		},
		{
			name:    "past exp",
			claims:  Claims{jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}},
			expired: true,
		},
		{
			name:    "no exp claim",
			claims:  Claims{},
			expired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.claims.Expired(now))
		})
	}
}
