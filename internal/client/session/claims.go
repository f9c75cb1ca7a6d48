package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims shown in the status line.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenClaims decodes the stored token without verifying its signature and
// returns the display claims. The token stays opaque for every authorization
// decision; only the backend validates it. ok is false when no token is
// stored or the token is not a well-formed JWT.
func (s *Store) TokenClaims(ctx context.Context) (Claims, bool) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return Claims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}
