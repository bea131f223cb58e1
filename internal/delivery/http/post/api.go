package post_http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	post_service "inkwell-blog-service/internal/service/post"
)

var validate = validator.New()

type PostHandler struct {
	postService post_service.Service
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewPostHandler(postService post_service.Service, log *logger.Logger, metrics metrics.Provider) *PostHandler {
	return &PostHandler{
		postService: postService,
		log:         log,
		metrics:     metrics,
	}
}

// PublicRoutes mounts the endpoints that do not require a bearer token.
func (h *PostHandler) PublicRoutes(r chi.Router) {
	r.Get("/", h.ListPosts)
	r.Get("/{id}", h.GetPost)
}

// ProtectedRoutes mounts the endpoints gated by the auth middleware.
func (h *PostHandler) ProtectedRoutes(r chi.Router) {
	r.Post("/", h.CreatePost)
	r.Put("/{id}", h.UpdatePost)
	r.Delete("/{id}", h.DeletePost)
}

func postIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, custom_errors.ErrValidation
	}
	return id, nil
}
