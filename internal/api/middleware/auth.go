package middleware

import (
	"context"
	"net/http"
	"strings"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth validates the bearer token and stashes the claims in the request
// context. Identity is issued elsewhere; this service only verifies.
func Auth(jwtKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				response.Error(w, appErrors.UnauthorizedError("Missing or malformed authorization header"))

				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &models.Claims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}

				return jwtKey, nil
			})
			if err != nil || !token.Valid {
				response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))

				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin wraps an already-authenticated route.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != models.RoleAdmin {
			response.Error(w, appErrors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.Claims)

	return claims, ok
}

// WithClaims is a test hook for handler tests that bypass the middleware.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
