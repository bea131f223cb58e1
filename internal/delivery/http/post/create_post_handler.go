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

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type postResponse struct {
	Post *model.Post `json:"post"`
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, h.log, custom_errors.ErrMissingToken)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.IncrementPostOperations("create", false)
		response.Error(w, h.log, custom_errors.ErrValidation)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := validate.Struct(req); err != nil {
		h.metrics.IncrementPostOperations("create", false)
		fields := make(map[string]string)
		if req.Title == "" {
			fields["Title"] = "required"
		}
		if req.Content == "" {
			fields["Content"] = "required"
		}
		response.ValidationError(w, fields)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		AuthorID: claims.UserID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		h.metrics.IncrementPostOperations("create", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementPostOperations("create", true)
	response.JSON(w, http.StatusCreated, postResponse{Post: post})
}
