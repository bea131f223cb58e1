package post_http

import (
	"net/http"

	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/model"
)

type postDetailedResponse struct {
	Post *model.PostDetailed `json:"post"`
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromURL(r)
	if err != nil {
		h.metrics.IncrementPostOperations("get", false)
		response.Error(w, h.log, err)
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		h.metrics.IncrementPostOperations("get", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementPostOperations("get", true)
	response.JSON(w, http.StatusOK, postDetailedResponse{Post: post})
}
