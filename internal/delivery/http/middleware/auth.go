package middleware

import (
	"context"
	"net/http"
	"strings"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/logger"
	auth_service "inkwell-blog-service/internal/service/auth"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

type TokenVerifier interface {
	VerifyToken(token string) (*auth_service.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	log      *logger.Logger
}

func NewAuthMiddleware(verifier TokenVerifier, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, log: log}
}

// Handler requires a valid bearer token and puts the claims into the
// request context. Verification is local signature and expiry checking
// only, no store lookup per request.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, m.log, custom_errors.ErrMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(w, m.log, custom_errors.ErrInvalidToken)
			return
		}

		claims, err := m.verifier.VerifyToken(parts[1])
		if err != nil {
			response.Error(w, m.log, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the verified claims set by Handler, or nil for
// an unauthenticated request.
func ClaimsFromContext(ctx context.Context) *auth_service.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth_service.Claims)
	return claims
}
