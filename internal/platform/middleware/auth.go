package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"crime-evidence/pkg/requestcontext"
)

// JWTValidator defines the interface for validating bearer tokens. The
// concrete implementation lives in internal/jwtauth; the middleware only
// needs claims back.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator.
type JWTClaims struct {
	Subject  string
	ClientID string
}

// RequireAuth validates the Authorization bearer token before allowing the
// request through. This service only verifies tokens; issuance belongs to
// the upstream identity provider.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.WarnContext(r.Context(), "token validation failed",
					"request_id", requestcontext.RequestID(r.Context()),
					"error", err.Error(),
				)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(r.Context(), "authenticated request",
				"subject", claims.Subject,
				"client_id", claims.ClientID,
			)
			next.ServeHTTP(w, r)
		})
	}
}
