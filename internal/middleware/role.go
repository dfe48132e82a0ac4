package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RoleLookup reports whether an email belongs to an admin.
type RoleLookup interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Admin requires the session identity to have the admin role. It must run
// after Session. The role is read from the store on every call.
func Admin(lookup RoleLookup, log *logrus.Logger) Guard {
	return func(r *http.Request) (*http.Request, error) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			return nil, ErrUnauthenticated
		}
		isAdmin, err := lookup.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			log.WithField("request_id", RequestID(r.Context())).Errorf("Role lookup for %s failed: %v", claims.Email, err)
			return nil, fmt.Errorf("failed to verify role: %w", err)
		}
		if !isAdmin {
			return nil, ErrForbidden
		}
		return r, nil
	}
}

// SelfOnly requires the session identity to equal the named path variable.
func SelfOnly(param string) Guard {
	return func(r *http.Request) (*http.Request, error) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			return nil, ErrUnauthenticated
		}
		if claims.Email != mux.Vars(r)[param] {
			return nil, ErrForbidden
		}
		return r, nil
	}
}
