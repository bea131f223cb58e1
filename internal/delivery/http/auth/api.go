package auth_http

import (
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	auth_service "inkwell-blog-service/internal/service/auth"
)

var validate = validator.New()

type AuthHandler struct {
	authService auth_service.Service
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewAuthHandler(authService auth_service.Service, log *logger.Logger, metrics metrics.Provider) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
		metrics:     metrics,
	}
}

// Routes mounts the public auth endpoints.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// fieldErrors flattens validator violations into a field -> constraint map.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
