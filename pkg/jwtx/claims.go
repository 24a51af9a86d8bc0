package jwtx

import (
	"slices"
	"time"

	"github.com/fractalglobal/fgc/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of tokens minted by the dev server.
const DefaultAccessTokenTTL = time.Hour

// Claims carried by a Fractal access token. Scopes use the wire form
// ("admin", "public", "developer", "user:<id>").
type Claims struct {
	jwt.RegisteredClaims

	// AppID is the client application the token was issued to.
	AppID string `json:"app_id"`

	Scopes []string `json:"scopes,omitempty"`
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(
	appID, subject string,
	scopes []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		AppID:  appID,
		Scopes: scopes,
	}
}

// HasScope reports whether the exact wire scope is present.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}

// ExpiresIn returns the remaining lifetime rounded down to whole seconds,
// never negative.
func (c *Claims) ExpiresIn(now time.Time) int64 {
	if c.ExpiresAt == nil {
		return 0
	}
	secs := int64(c.ExpiresAt.Sub(now) / time.Second)
	return max(secs, 0)
}
