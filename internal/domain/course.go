// Package domain contains core domain types for the course catalog.
package domain

import (
	"time"
)

// Lesson is a single unit of a course.
type Lesson struct {
	ID              string  `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	Content         string  `json:"content"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
	VideoURL        *string `json:"video_url"`
	Order           int     `json:"order"`
}

// Course is a catalog entry with its lessons in authoring order.
type Course struct {
	ID            string    `json:"id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category" validate:"required"`
	Difficulty    string    `json:"difficulty"`
	DurationHours int       `json:"duration_hours" validate:"gt=0"`
	Instructor    string    `json:"instructor"`
	ImageURL      string    `json:"image_url"`
	Lessons       []Lesson  `json:"lessons" validate:"dive"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Lesson returns the first lesson with the given ID.
// Lesson IDs are not guaranteed unique within a course, so the scan is linear
// and the earliest entry wins.
func (c *Course) Lesson(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Clone returns a copy of the course that shares no slices with c.
func (c Course) Clone() Course {
	if c.Lessons != nil {
		lessons := make([]Lesson, len(c.Lessons))
		copy(lessons, c.Lessons)
		c.Lessons = lessons
	}
	return c
}
