package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated means the request carries no valid session token.
	ErrUnauthenticated = errors.New("unauthorized access")
	// ErrForbidden means the caller is authenticated but may not use the route.
	ErrForbidden = errors.New("forbidden access")
)

// Guard inspects a request and either returns it, possibly with an enriched
// context, or an error that ends the request.
type Guard func(r *http.Request) (*http.Request, error)

// Chain runs guards in order before h. The first failing guard writes the
// error response and h is not called.
func Chain(h http.Handler, guards ...Guard) http.Handler {
	if len(guards) == 0 {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, g := range guards {
			next, err := g(r)
			if err != nil {
				writeGuardError(w, err)
				return
			}
			r = next
		}
		h.ServeHTTP(w, r)
	})
}

// Guards bundles the guards built from the application's dependencies.
type Guards struct {
	Session Guard
	Admin   Guard
}

// Messages sent to clients for rejected requests.
const (
	unauthorizedMessage = "unauthorized access!"
	forbiddenMessage    = "forbidden access!"
)

func writeGuardError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, unauthorizedMessage
	case errors.Is(err, ErrForbidden):
		status, msg = http.StatusForbidden, forbiddenMessage
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
