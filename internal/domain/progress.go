package domain

import "time"

// CourseProgress is the caller's recorded position in a course.
// ProgressPercentage is whatever the caller reported; it is never derived
// from CompletedLessons.
type CourseProgress struct {
	CourseID           string    `json:"course_id"`
	CompletedLessons   []string  `json:"completed_lessons"`
	ProgressPercentage float64   `json:"progress_percentage"`
	LastAccessed       time.Time `json:"last_accessed"`
}

// NewCourseProgress returns the zero-state record for a course.
func NewCourseProgress(courseID string, now time.Time) *CourseProgress {
	return &CourseProgress{
		CourseID:         courseID,
		CompletedLessons: []string{},
		LastAccessed:     now,
	}
}

// Clone returns a deep copy of p.
func (p *CourseProgress) Clone() *CourseProgress {
	if p == nil {
		return nil
	}
	c := *p
	c.CompletedLessons = make([]string, len(p.CompletedLessons))
	copy(c.CompletedLessons, p.CompletedLessons)
	return &c
}
