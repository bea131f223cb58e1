package post_http

import (
	"net/http"

	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/model"
)

type listPostsResponse struct {
	Posts []*model.PostDetailed `json:"posts"`
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		h.metrics.IncrementPostOperations("list", false)
		response.Error(w, h.log, err)
		return
	}

	h.metrics.IncrementPostOperations("list", true)
	response.JSON(w, http.StatusOK, listPostsResponse{Posts: posts})
}
