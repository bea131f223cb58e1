package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	auth_service "inkwell-blog-service/internal/service/auth"
	auth_mock "inkwell-blog-service/mocks/auth"
)

func TestAuthMiddleware_Handler(t *testing.T) {
	claims := &auth_service.Claims{
		UserID:           42,
		Email:            "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}

	tests := []struct {
		name       string
		authHeader string
		mocks      func(verifier *auth_mock.Service)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "MissingHeader",
			authHeader: "",
			mocks:      func(verifier *auth_mock.Service) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NotBearerScheme",
			authHeader: "Basic abc123",
			mocks:      func(verifier *auth_mock.Service) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NoSpaceAfterScheme",
			authHeader: "Bearer",
			mocks:      func(verifier *auth_mock.Service) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "InvalidToken",
			authHeader: "Bearer bad-token",
			mocks: func(verifier *auth_mock.Service) {
				verifier.On("VerifyToken", "bad-token").Return(nil, custom_errors.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "ExpiredToken",
			authHeader: "Bearer stale-token",
			mocks: func(verifier *auth_mock.Service) {
				verifier.On("VerifyToken", "stale-token").Return(nil, custom_errors.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "ValidToken",
			authHeader: "Bearer good-token",
			mocks: func(verifier *auth_mock.Service) {
				verifier.On("VerifyToken", "good-token").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(auth_mock.Service)
			tt.mocks(verifier)

			log := logger.New("test")
			mw := middleware.NewAuthMiddleware(verifier, log)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got := middleware.ClaimsFromContext(r.Context())
				require.NotNil(t, got)
				assert.Equal(t, int64(42), got.UserID)
				assert.Equal(t, "alice@example.com", got.Email)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.Handler(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			verifier.AssertExpectations(t)
		})
	}
}

func TestClaimsFromContext_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middleware.ClaimsFromContext(req.Context()))
}
