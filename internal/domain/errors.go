package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a course or lesson identifier does not resolve.
var ErrNotFound = errors.New("not found")

// Resource kinds reported by NotFoundError.
const (
	KindCourse = "course"
	KindLesson = "lesson"
)

// NotFoundError names the resource that could not be resolved.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// CourseNotFound builds the error for an unknown course ID.
func CourseNotFound(id string) error {
	return &NotFoundError{Kind: KindCourse, ID: id}
}

// LessonNotFound builds the error for an unknown lesson ID.
func LessonNotFound(id string) error {
	return &NotFoundError{Kind: KindLesson, ID: id}
}
