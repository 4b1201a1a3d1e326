// Package store provides progress persistence interfaces and implementations.
package store

import (
	"context"
	"fmt"

	"github.com/ashureev/devops-courses/internal/domain"
)

// ProgressRepository stores one progress record per course ID.
type ProgressRepository interface {
	// GetProgress retrieves the record stored for courseID.
	// It returns nil, nil when nothing has been stored yet.
	GetProgress(ctx context.Context, courseID string) (*domain.CourseProgress, error)

	// PutProgress stores progress under courseID, replacing any prior record.
	PutProgress(ctx context.Context, courseID string, progress *domain.CourseProgress) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// New creates the repository for the named backend.
func New(backend, dsn string) (ProgressRepository, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendSQLite:
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("unknown progress backend %q", backend)
	}
}
