package api

import (
	"net/http"

	"github.com/ashureev/devops-courses/internal/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the handlers and global middleware into a chi router.
func NewRouter(courses *CourseHandler, progress *ProgressHandler, health *HealthHandler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	health.RegisterHealth(r)
	r.Route("/api", func(r chi.Router) {
		courses.RegisterRoutes(r)
		progress.RegisterRoutes(r)
	})

	return r
}
