package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
	"github.com/ashureev/devops-courses/internal/shared"
	_ "modernc.org/sqlite"
)

// DefaultSQLiteDSN keeps progress in a shared in-memory database, so nothing
// survives a restart.
const DefaultSQLiteDSN = "file:progress?mode=memory&cache=shared"

const (
	writeRetries   = 3
	writeBaseDelay = 50 * time.Millisecond
)

// SQLiteStore implements ProgressRepository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed progress repository.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}

	memory := isMemoryDSN(dsn)
	if !memory {
		if err := os.MkdirAll(filepath.Dir(dsnPath(dsn)), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", withPragmas(dsn, memory))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(8)
	if memory {
		// A shared in-memory database is dropped once its last connection closes.
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func dsnPath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

func withPragmas(dsn string, memory bool) string {
	pragmas := []string{"_pragma=busy_timeout(5000)"}
	if !memory {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)", "_pragma=synchronous(NORMAL)")
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS course_progress (
		course_id TEXT PRIMARY KEY,
		record_course_id TEXT NOT NULL,
		completed_lessons TEXT NOT NULL,
		progress_percentage REAL NOT NULL,
		last_accessed TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetProgress retrieves the progress record stored for a course.
func (s *SQLiteStore) GetProgress(ctx context.Context, courseID string) (*domain.CourseProgress, error) {
	query := `
		SELECT record_course_id, completed_lessons, progress_percentage, last_accessed
		FROM course_progress WHERE course_id = ?`

	var (
		progress     domain.CourseProgress
		lessonsJSON  string
		lastAccessed string
	)
	err := s.db.QueryRowContext(ctx, query, courseID).Scan(
		&progress.CourseID, &lessonsJSON, &progress.ProgressPercentage, &lastAccessed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan progress row: %w", err)
	}

	if err := json.Unmarshal([]byte(lessonsJSON), &progress.CompletedLessons); err != nil {
		return nil, fmt.Errorf("decode completed_lessons: %w", err)
	}
	if progress.CompletedLessons == nil {
		progress.CompletedLessons = []string{}
	}
	progress.LastAccessed, err = time.Parse(time.RFC3339Nano, lastAccessed)
	if err != nil {
		return nil, fmt.Errorf("parse last_accessed: %w", err)
	}

	return &progress, nil
}

// PutProgress creates or replaces the progress record for a course.
// Writes that hit SQLITE_BUSY or a locked table are retried with
// exponential backoff.
func (s *SQLiteStore) PutProgress(ctx context.Context, courseID string, progress *domain.CourseProgress) error {
	lessons := progress.CompletedLessons
	if lessons == nil {
		lessons = []string{}
	}
	lessonsJSON, err := json.Marshal(lessons)
	if err != nil {
		return fmt.Errorf("encode completed_lessons: %w", err)
	}

	for i := 0; i < writeRetries; i++ {
		err = s.putProgressOnce(ctx, courseID, progress, string(lessonsJSON))
		if err == nil {
			return nil
		}
		if !shared.IsSQLiteConflictError(err) || i == writeRetries-1 {
			break
		}

		delay := writeBaseDelay * time.Duration(1<<i)
		slog.Debug("PutProgress hit a locked database, retrying",
			"course_id", courseID,
			"attempt", i+1,
			"delay", delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("put progress for %s: %w", courseID, err)
}

func (s *SQLiteStore) putProgressOnce(ctx context.Context, courseID string, progress *domain.CourseProgress, lessonsJSON string) error {
	query := `
	INSERT INTO course_progress (
		course_id, record_course_id, completed_lessons, progress_percentage, last_accessed, updated_at
	) VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(course_id) DO UPDATE SET
		record_course_id = excluded.record_course_id,
		completed_lessons = excluded.completed_lessons,
		progress_percentage = excluded.progress_percentage,
		last_accessed = excluded.last_accessed,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		courseID, progress.CourseID, lessonsJSON, progress.ProgressPercentage,
		progress.LastAccessed.Format(time.RFC3339Nano), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
