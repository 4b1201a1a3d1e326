// Package api provides HTTP handlers for the course catalog API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashureev/devops-courses/internal/domain"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// writeError maps a service error onto an HTTP response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		Error(w, http.StatusNotFound, notFoundMessage(nf.Kind))
	case errors.Is(err, domain.ErrNotFound):
		Error(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func notFoundMessage(kind string) string {
	switch kind {
	case domain.KindCourse:
		return "Course not found"
	case domain.KindLesson:
		return "Lesson not found"
	default:
		return "Not found"
	}
}
