package api

import (
	"net/http"
	"net/url"

	"github.com/ashureev/devops-courses/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CatalogReader is the read-only catalog used by CourseHandler.
type CatalogReader interface {
	List() []domain.Course
	Get(id string) (domain.Course, error)
	ListByCategory(category string) []domain.Course
	Lesson(courseID, lessonID string) (domain.Lesson, error)
	Categories() []string
}

// CourseHandler serves course, lesson and category lookups.
type CourseHandler struct {
	catalog CatalogReader
}

// NewCourseHandler creates a course handler.
func NewCourseHandler(catalog CatalogReader) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// RegisterRoutes registers catalog routes on the /api router.
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
	// Wildcard so labels containing "/" such as "CI/CD" still route.
	r.Get("/courses/category/*", h.ListCoursesByCategory)
	r.Get("/courses/{courseID}", h.GetCourse)
	r.Get("/courses/{courseID}/lessons/{lessonID}", h.GetLesson)
	r.Get("/categories", h.ListCategories)
}

// ListCourses returns every course.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, h.catalog.List())
}

// GetCourse returns a single course.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.catalog.Get(chi.URLParam(r, "courseID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, course)
}

// ListCoursesByCategory returns courses in a category, matched without regard to case.
func (h *CourseHandler) ListCoursesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "*")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}
	JSON(w, http.StatusOK, h.catalog.ListByCategory(category))
}

// GetLesson returns one lesson of a course.
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.catalog.Lesson(chi.URLParam(r, "courseID"), chi.URLParam(r, "lessonID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, lesson)
}

// ListCategories returns the distinct category labels.
func (h *CourseHandler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string][]string{"categories": h.catalog.Categories()})
}
