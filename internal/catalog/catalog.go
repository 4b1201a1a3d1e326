// Package catalog provides the read-only course catalog.
package catalog

import (
	"fmt"
	"strings"

	"github.com/ashureev/devops-courses/internal/domain"
)

// Catalog holds the seeded courses in insertion order.
// It is never mutated after New returns, so concurrent reads need no locking.
type Catalog struct {
	courses []domain.Course
	index   map[string]int
}

// New builds a catalog from courses. Course IDs must be non-empty and unique.
func New(courses []domain.Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]domain.Course, 0, len(courses)),
		index:   make(map[string]int, len(courses)),
	}
	for _, course := range courses {
		if course.ID == "" {
			return nil, fmt.Errorf("course at position %d has an empty id", len(c.courses))
		}
		if _, dup := c.index[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.index[course.ID] = len(c.courses)
		c.courses = append(c.courses, course.Clone())
	}
	return c, nil
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// List returns every course in seed order.
func (c *Catalog) List() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = course.Clone()
	}
	return out
}

// Get returns the course with the given ID.
func (c *Catalog) Get(id string) (domain.Course, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Course{}, domain.CourseNotFound(id)
	}
	return c.courses[i].Clone(), nil
}

// Exists reports whether id names a seeded course.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.index[id]
	return ok
}

// ListByCategory returns courses whose category matches case-insensitively.
// The result is empty, never nil, when nothing matches.
func (c *Catalog) ListByCategory(category string) []domain.Course {
	out := []domain.Course{}
	for _, course := range c.courses {
		if strings.EqualFold(course.Category, category) {
			out = append(out, course.Clone())
		}
	}
	return out
}

// Lesson returns the first lesson matching lessonID in the given course.
func (c *Catalog) Lesson(courseID, lessonID string) (domain.Lesson, error) {
	i, ok := c.index[courseID]
	if !ok {
		return domain.Lesson{}, domain.CourseNotFound(courseID)
	}
	lesson, ok := c.courses[i].Lesson(lessonID)
	if !ok {
		return domain.Lesson{}, domain.LessonNotFound(lessonID)
	}
	return lesson, nil
}

// Categories returns the distinct category labels. Callers must not rely on
// the order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.courses))
	out := []string{}
	for _, course := range c.courses {
		if _, ok := seen[course.Category]; ok {
			continue
		}
		seen[course.Category] = struct{}{}
		out = append(out, course.Category)
	}
	return out
}
