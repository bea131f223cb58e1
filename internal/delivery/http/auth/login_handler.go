package auth_http

import (
	"encoding/json"
	"net/http"
	"strings"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/response"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.IncrementAuthOperations("login", false)
		response.Error(w, h.log, custom_errors.ErrValidation)
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := validate.Struct(req); err != nil {
		h.metrics.IncrementAuthOperations("login", false)
		response.ValidationError(w, fieldErrors(err))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.IncrementAuthOperations("login", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementAuthOperations("login", true)
	response.JSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
