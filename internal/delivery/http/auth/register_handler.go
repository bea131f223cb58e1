package auth_http

import (
	"encoding/json"
	"net/http"
	"strings"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.IncrementAuthOperations("register", false)
		response.Error(w, h.log, custom_errors.ErrValidation)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		h.metrics.IncrementAuthOperations("register", false)
		response.ValidationError(w, fieldErrors(err))
		return
	}

	user, token, err := h.authService.Register(r.Context(), &model.RegisterUserDTO{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.metrics.IncrementAuthOperations("register", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementAuthOperations("register", true)
	response.JSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}
