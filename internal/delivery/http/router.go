package delivery_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	auth_http "inkwell-blog-service/internal/delivery/http/auth"
	"inkwell-blog-service/internal/delivery/http/middleware"
	post_http "inkwell-blog-service/internal/delivery/http/post"
	"inkwell-blog-service/internal/delivery/http/response"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
)

func NewRouter(
	authHandler *auth_http.AuthHandler,
	postHandler *post_http.PostHandler,
	authMW *middleware.AuthMiddleware,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(metricsProvider))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Route("/auth", authHandler.Routes)

		r.Route("/posts", func(r chi.Router) {
			postHandler.PublicRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(authMW.Handler)
				postHandler.ProtectedRoutes(r)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authMW.Handler)
			r.Get("/profile", authHandler.Profile)
		})
	})

	return r
}
