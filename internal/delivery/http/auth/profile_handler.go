package auth_http

import (
	"net/http"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/model"
)

type profileResponse struct {
	User *model.User `json:"user"`
}

// Profile returns the account behind the bearer token. The store is
// consulted here, so a deleted account yields 404 even while its token
// still verifies.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		h.metrics.IncrementAuthOperations("profile", false)
		response.Error(w, h.log, custom_errors.ErrMissingToken)
		return
	}

	user, err := h.authService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		h.metrics.IncrementAuthOperations("profile", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementAuthOperations("profile", true)
	response.JSON(w, http.StatusOK, profileResponse{User: user})
}
