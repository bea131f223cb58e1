package post_http

import (
	"encoding/json"
	"net/http"
	"strings"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/model"
)

type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
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

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.IncrementPostOperations("update", false)
		response.Error(w, h.log, custom_errors.ErrValidation)
		return
	}

	// fields empty after trimming are treated as absent; updated_at is
	// refreshed regardless
	dto := &model.UpdatePostDTO{}
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			dto.Title = &title
		}
	}
	if req.Content != nil {
		if content := strings.TrimSpace(*req.Content); content != "" {
			dto.Content = &content
		}
	}

	post, err := h.postService.UpdatePost(r.Context(), claims.UserID, id, dto)
	if err != nil {
		h.metrics.IncrementPostOperations("update", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementPostOperations("update", true)
	response.JSON(w, http.StatusOK, postResponse{Post: post})
}
