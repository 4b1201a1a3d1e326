// Package progress implements course progress tracking on top of the catalog.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
	"github.com/ashureev/devops-courses/internal/store"
)

// CourseChecker reports whether a course exists.
type CourseChecker interface {
	Exists(courseID string) bool
}

// Service reads and writes progress for known courses.
type Service struct {
	courses CourseChecker
	repo    store.ProgressRepository
	now     func() time.Time
}

// NewService creates a progress service.
func NewService(courses CourseChecker, repo store.ProgressRepository) *Service {
	return &Service{courses: courses, repo: repo, now: time.Now}
}

// Get returns the stored progress for a course, or a zero-state record when
// nothing has been recorded yet. Unknown courses yield domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, courseID string) (*domain.CourseProgress, error) {
	if !s.courses.Exists(courseID) {
		return nil, domain.CourseNotFound(courseID)
	}

	p, err := s.repo.GetProgress(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if p == nil {
		return domain.NewCourseProgress(courseID, s.now()), nil
	}
	return p, nil
}

// Update replaces the progress stored for courseID with p as given.
// The record's own CourseID, lesson IDs and percentage are not checked.
func (s *Service) Update(ctx context.Context, courseID string, p *domain.CourseProgress) error {
	if !s.courses.Exists(courseID) {
		return domain.CourseNotFound(courseID)
	}
	if err := s.repo.PutProgress(ctx, courseID, p); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// Ping checks the underlying repository.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
