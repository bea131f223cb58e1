package post_http

import (
	"net/http"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/delivery/http/response"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, h.log, custom_errors.ErrMissingToken)
		return
	}

	id, err := postIDFromURL(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.postService.DeletePost(r.Context(), claims.UserID, id); err != nil {
		h.metrics.IncrementPostOperations("delete", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementPostOperations("delete", true)
	response.JSON(w, http.StatusOK, messageResponse{Message: "post deleted"})
}
