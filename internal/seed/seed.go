// Package seed provides the course dataset loaded once at startup.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
	"github.com/ashureev/devops-courses/internal/validate"
)

// ErrEmpty is returned when the dataset contains no courses.
var ErrEmpty = errors.New("seed dataset is empty")

// Load returns the built-in courses, or the courses in the JSON file at path
// when path is set. The result is validated before it is returned.
func Load(now time.Time, path string) ([]domain.Course, error) {
	courses := Courses(now)
	if path != "" {
		var err error
		courses, err = readFile(path, now)
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Validate checks that the dataset is non-empty, that every record is well
// formed and that course IDs are unique.
func Validate(courses []domain.Course) error {
	if len(courses) == 0 {
		return ErrEmpty
	}

	v := validate.New()
	seen := make(map[string]struct{}, len(courses))
	for i := range courses {
		c := &courses[i]
		if err := v.Struct(c); err != nil {
			return fmt.Errorf("course %d (%q): %w", i, c.ID, err)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate course id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func readFile(path string, now time.Time) ([]domain.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	for i := range courses {
		if courses[i].CreatedAt.IsZero() {
			courses[i].CreatedAt = now
		}
		if courses[i].UpdatedAt.IsZero() {
			courses[i].UpdatedAt = now
		}
	}
	return courses, nil
}
