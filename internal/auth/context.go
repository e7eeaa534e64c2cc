// internal/auth/context.go
//
// Viewer-identity helpers.  The platform in front of Picohost authenticates
// requests and forwards the account name in a trusted header; everything in
// this repo only needs to know *who* is asking, carried through the request
// context.
//
// Usage
// -----
//	// Attach user "alice" to the request context (in middleware).
//	ctx = auth.WithUser(ctx, "alice")
//
//	// Downstream code retrieves the ID.  Empty string means anonymous.
//	id, ok := auth.UserID(ctx)

package auth

import (
	"context"
	"net/http"
)

// HeaderUser is set by the fronting platform after authentication.
const HeaderUser = "X-Picohost-User"

// userKey is unexported to avoid context-key collisions.
type userKey struct{}

// WithUser returns a new context carrying the given userID.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID extracts the userID from ctx.  It returns ("", false) for anonymous
// requests or when the middleware has not run.
func UserID(ctx context.Context) (string, bool) {
	v := ctx.Value(userKey{})
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Middleware lifts the trusted identity header into the request context.
// Anonymous requests pass through unchanged.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := r.Header.Get(HeaderUser); user != "" {
			r = r.WithContext(WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
