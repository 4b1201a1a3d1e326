package store

import (
	"context"
	"sync"

	"github.com/ashureev/devops-courses/internal/domain"
)

// MemoryStore implements ProgressRepository with a map.
// The mutex only protects the map; concurrent writers to the same course
// race and the last write wins.
type MemoryStore struct {
	mu       sync.RWMutex
	progress map[string]*domain.CourseProgress
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryStore {
	return &MemoryStore{progress: make(map[string]*domain.CourseProgress)}
}

// GetProgress returns a copy of the stored record.
func (s *MemoryStore) GetProgress(_ context.Context, courseID string) (*domain.CourseProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress[courseID].Clone(), nil
}

// PutProgress replaces the record for courseID with a copy of progress.
func (s *MemoryStore) PutProgress(_ context.Context, courseID string, progress *domain.CourseProgress) error {
	stored := progress.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[courseID] = stored
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
