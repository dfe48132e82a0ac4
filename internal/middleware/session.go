package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/token"
)

// TokenVerifier validates a raw session token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

type claimsKey struct{}

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, c *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by the session guard.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return c, ok && c != nil
}

// Session requires a valid token in the named cookie.
func Session(v TokenVerifier, cookieName string) Guard {
	return func(r *http.Request) (*http.Request, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return nil, ErrUnauthenticated
		}
		claims, err := v.Verify(cookie.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		return r.WithContext(WithClaims(r.Context(), claims)), nil
	}
}
