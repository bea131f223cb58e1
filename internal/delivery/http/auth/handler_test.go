package auth_http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-blog-service/internal/custom_errors"
	auth_http "inkwell-blog-service/internal/delivery/http/auth"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	auth_mock "inkwell-blog-service/mocks/auth"
	metrics_mock "inkwell-blog-service/mocks/metrics"
)

func setupHandler(t *testing.T) (*auth_mock.Service, chi.Router) {
	t.Helper()

	authService := new(auth_mock.Service)
	metricsProvider := new(metrics_mock.Provider)
	metricsProvider.On("IncrementAuthOperations", mock.Anything, mock.Anything).Maybe()

	handler := auth_http.NewAuthHandler(authService, logger.New("test"), metricsProvider)
	r := chi.NewRouter()
	r.Route("/api/auth", handler.Routes)
	return authService, r
}

func doRequest(t *testing.T, r chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authService, r := setupHandler(t)
		authService.On("Register", mock.Anything, &model.RegisterUserDTO{
			Email:    "alice@example.com",
			Password: "secret123",
			Name:     "Alice",
		}).Return(&model.User{ID: 1, Email: "alice@example.com", Name: "Alice"}, "tok-1", nil)

		rec := doRequest(t, r, http.MethodPost, "/api/auth/register", auth_http.RegisterRequest{
			Email:    "alice@example.com",
			Password: "secret123",
			Name:     "Alice",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			User  *model.User `json:"user"`
			Token string      `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "tok-1", body.Token)
		assert.Equal(t, int64(1), body.User.ID)
		assert.NotContains(t, rec.Body.String(), "password")
		authService.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		authService, r := setupHandler(t)
		authService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterUserDTO")).
			Return(nil, "", custom_errors.ErrEmailExists)

		rec := doRequest(t, r, http.MethodPost, "/api/auth/register", auth_http.RegisterRequest{
			Email:    "alice@example.com",
			Password: "secret123",
			Name:     "Alice",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		tests := []struct {
			name string
			req  auth_http.RegisterRequest
		}{
			{"MissingEmail", auth_http.RegisterRequest{Password: "secret123", Name: "Alice"}},
			{"MalformedEmail", auth_http.RegisterRequest{Email: "not-an-email", Password: "secret123", Name: "Alice"}},
			{"ShortPassword", auth_http.RegisterRequest{Email: "alice@example.com", Password: "abc", Name: "Alice"}},
			{"MissingName", auth_http.RegisterRequest{Email: "alice@example.com", Password: "secret123"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				authService, r := setupHandler(t)

				rec := doRequest(t, r, http.MethodPost, "/api/auth/register", tt.req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "fields")
				authService.AssertNotCalled(t, "Register")
			})
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		authService, r := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authService, r := setupHandler(t)
		authService.On("Login", mock.Anything, "alice@example.com", "secret123").
			Return(&model.User{ID: 1, Email: "alice@example.com", Name: "Alice"}, "tok-2", nil)

		rec := doRequest(t, r, http.MethodPost, "/api/auth/login", auth_http.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret123",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "tok-2", body.Token)
		authService.AssertExpectations(t)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		authService, r := setupHandler(t)
		authService.On("Login", mock.Anything, "alice@example.com", "wrong").
			Return(nil, "", custom_errors.ErrInvalidCredentials)

		rec := doRequest(t, r, http.MethodPost, "/api/auth/login", auth_http.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		authService, r := setupHandler(t)

		rec := doRequest(t, r, http.MethodPost, "/api/auth/login", auth_http.LoginRequest{
			Email: "alice@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "Login")
	})
}
