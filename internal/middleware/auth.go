package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/auth"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// Authenticate validates the Bearer token, rejects revoked tokens and stores the claims in the request context.
func Authenticate(tokens *auth.TokenManager, revoked auth.RevocationStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authorization header required")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Invalid authorization header format")
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("revocation check failed", "error", err)
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "internal_error", "internal server error")
				return
			}
			if isRevoked {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Token has been revoked")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
