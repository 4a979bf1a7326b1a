package middlewares

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
	Validate(ctx context.Context, tokenString, expectedSubject string) error
}

// UserLoader loads the user a token subject refers to.
type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AuthMiddleware establishes the request identity from a bearer token.
// Requests without a usable token continue unauthenticated; RequireAuth
// rejects them on protected routes. A token whose subject has no account
// is rejected with 401 here.
func AuthMiddleware(tokener Tokener, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := tokener.GetSubject(ctx, tokenString)
			if err != nil {
				log.Warnw("cannot read token subject", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := GetIdentityFromContext(ctx); ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByEmail(ctx, subject)
			if err != nil {
				log.Errorw("failed to load token subject", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				log.Warnw("authorization failed, unknown subject", "subject", subject)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokener.Validate(ctx, tokenString, user.Email); err != nil {
				log.Warnw("authorization failed", "subject", subject, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = SetIdentity(ctx, Identity{Subject: user.Email, Authorities: []string{}})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
