package middlewares

import (
	"context"
	"net/http"
)

// Identity is the authenticated principal of a request.
type Identity struct {
	Subject     string   // user email
	Authorities []string // always empty, ownership is the only authorization rule
}

type identityKey struct{}

// SetIdentity returns a copy of ctx carrying id.
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentityFromContext returns the identity set by AuthMiddleware, if any.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireAuth answers 401 to requests that carry no identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentityFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
