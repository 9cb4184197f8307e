package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/artfest/gallery-api/app/httputil"
	userservice "github.com/artfest/gallery-api/app/modules/user/application"
	"github.com/artfest/gallery-api/pkg/jwt"
)

type contextKey string

const claimsKey contextKey = "session_claims"

// Auth validates the bearer token and stashes the session claims in the
// request context. Requests without a valid token get a 401.
func Auth(tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route behind the admin capability. It consults the
// authorizer rather than trusting the role claim in the token.
func RequireAdmin(authz userservice.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			isAdmin, err := authz.IsAdmin(r.Context(), userID)
			if err != nil {
				httputil.Error(w, http.StatusInternalServerError, "authorization check failed")
				return
			}
			if !isAdmin {
				httputil.Error(w, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Claims returns the session claims stored by Auth.
func Claims(ctx context.Context) (*jwt.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.SessionClaims)
	return claims, ok
}

// UserID returns the authenticated user's id.
func UserID(ctx context.Context) (string, bool) {
	claims, ok := Claims(ctx)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}

// WithClaims injects claims directly. Test helper.
func WithClaims(ctx context.Context, claims *jwt.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
