package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
	"github.com/ashureev/devops-courses/internal/validate"
	"github.com/go-chi/chi/v5"
)

const maxProgressBody = 1 << 20

// ProgressService reads and replaces per-course progress.
type ProgressService interface {
	Get(ctx context.Context, courseID string) (*domain.CourseProgress, error)
	Update(ctx context.Context, courseID string, p *domain.CourseProgress) error
}

// ProgressHandler serves the progress endpoints.
type ProgressHandler struct {
	progress  ProgressService
	validator *validate.Validator
}

// NewProgressHandler creates a progress handler.
func NewProgressHandler(progress ProgressService, v *validate.Validator) *ProgressHandler {
	return &ProgressHandler{progress: progress, validator: v}
}

// RegisterRoutes registers progress routes on the /api router.
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/progress/{courseID}", h.GetProgress)
	r.Post("/progress/{courseID}", h.UpdateProgress)
}

// progressRequest mirrors domain.CourseProgress with pointers so that a
// missing field can be told apart from a zero value.
type progressRequest struct {
	CourseID           *string    `json:"course_id" validate:"required"`
	CompletedLessons   *[]string  `json:"completed_lessons" validate:"required"`
	ProgressPercentage *float64   `json:"progress_percentage" validate:"required"`
	LastAccessed       *time.Time `json:"last_accessed" validate:"required"`
}

func (req *progressRequest) toDomain() *domain.CourseProgress {
	return &domain.CourseProgress{
		CourseID:           *req.CourseID,
		CompletedLessons:   *req.CompletedLessons,
		ProgressPercentage: *req.ProgressPercentage,
		LastAccessed:       *req.LastAccessed,
	}
}

type validationErrorResponse struct {
	Error         string                `json:"error"`
	InvalidParams []validate.FieldError `json:"invalid_params"`
}

// GetProgress returns the caller's progress for a course.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := h.progress.Get(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, p)
}

// UpdateProgress replaces the caller's progress for a course.
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProgressBody)

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var fieldErrs validate.Errors
		if errors.As(err, &fieldErrs) {
			JSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
				Error:         "validation failed",
				InvalidParams: fieldErrs,
			})
			return
		}
		writeError(w, r, err)
		return
	}

	if err := h.progress.Update(r.Context(), chi.URLParam(r, "courseID"), req.toDomain()); err != nil {
		writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"message": "Progress updated successfully"})
}
