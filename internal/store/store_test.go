package store

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
)

type repoFactory func(t *testing.T) ProgressRepository

func backends() map[string]repoFactory {
	return map[string]repoFactory{
		"memory": func(t *testing.T) ProgressRepository {
			return NewMemory()
		},
		"sqlite": func(t *testing.T) ProgressRepository {
			t.Helper()
			repo, err := NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
			if err != nil {
				t.Fatalf("NewSQLite failed: %v", err)
			}
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		},
	}
}

func TestGetProgressMissing(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := factory(t)
			got, err := repo.GetProgress(context.Background(), "devops-fundamentals")
			if err != nil {
				t.Fatalf("GetProgress failed: %v", err)
			}
			if got != nil {
				t.Fatalf("expected nil for missing record, got %+v", got)
			}
		})
	}
}

func TestPutProgressRoundTrip(t *testing.T) {
	accessed := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.FixedZone("", 2*3600))
	want := &domain.CourseProgress{
		CourseID:           "body-course-id",
		CompletedLessons:   []string{"lesson-1", "lesson-1", "not-a-lesson"},
		ProgressPercentage: 33.3,
		LastAccessed:       accessed,
	}

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := factory(t)
			ctx := context.Background()
			if err := repo.PutProgress(ctx, "devops-fundamentals", want); err != nil {
				t.Fatalf("PutProgress failed: %v", err)
			}

			got, err := repo.GetProgress(ctx, "devops-fundamentals")
			if err != nil {
				t.Fatalf("GetProgress failed: %v", err)
			}
			if got == nil {
				t.Fatal("expected stored record")
			}
			if got.CourseID != want.CourseID {
				t.Errorf("expected course_id %q, got %q", want.CourseID, got.CourseID)
			}
			if !reflect.DeepEqual(got.CompletedLessons, want.CompletedLessons) {
				t.Errorf("expected completed %v, got %v", want.CompletedLessons, got.CompletedLessons)
			}
			if got.ProgressPercentage != want.ProgressPercentage {
				t.Errorf("expected %v%%, got %v%%", want.ProgressPercentage, got.ProgressPercentage)
			}
			if !got.LastAccessed.Equal(want.LastAccessed) {
				t.Errorf("expected last_accessed %v, got %v", want.LastAccessed, got.LastAccessed)
			}
		})
	}
}

func TestPutProgressReplaces(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := factory(t)
			ctx := context.Background()
			first := &domain.CourseProgress{CourseID: "c", CompletedLessons: []string{"lesson-1", "lesson-2"}, ProgressPercentage: 66.6, LastAccessed: time.Now()}
			second := &domain.CourseProgress{CourseID: "c", CompletedLessons: []string{"lesson-3"}, ProgressPercentage: 10, LastAccessed: time.Now()}

			if err := repo.PutProgress(ctx, "c", first); err != nil {
				t.Fatalf("PutProgress failed: %v", err)
			}
			if err := repo.PutProgress(ctx, "c", second); err != nil {
				t.Fatalf("PutProgress failed: %v", err)
			}

			got, err := repo.GetProgress(ctx, "c")
			if err != nil {
				t.Fatalf("GetProgress failed: %v", err)
			}
			if !reflect.DeepEqual(got.CompletedLessons, []string{"lesson-3"}) {
				t.Errorf("expected only latest lessons, got %v", got.CompletedLessons)
			}
			if got.ProgressPercentage != 10 {
				t.Errorf("expected 10%%, got %v", got.ProgressPercentage)
			}
		})
	}
}

func TestPutProgressEmptyLessons(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := factory(t)
			ctx := context.Background()
			if err := repo.PutProgress(ctx, "c", &domain.CourseProgress{CourseID: "c", LastAccessed: time.Now()}); err != nil {
				t.Fatalf("PutProgress failed: %v", err)
			}
			got, err := repo.GetProgress(ctx, "c")
			if err != nil {
				t.Fatalf("GetProgress failed: %v", err)
			}
			if got.CompletedLessons == nil || len(got.CompletedLessons) != 0 {
				t.Errorf("expected empty non-nil lessons, got %#v", got.CompletedLessons)
			}
		})
	}
}

func TestConcurrentWritesLastWriteWins(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := factory(t)
			ctx := context.Background()

			const writers = 16
			var wg sync.WaitGroup
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					p := &domain.CourseProgress{
						CourseID:           "c",
						CompletedLessons:   []string{fmt.Sprintf("lesson-%d", i)},
						ProgressPercentage: float64(i),
						LastAccessed:       time.Now(),
					}
					if err := repo.PutProgress(ctx, "c", p); err != nil {
						t.Errorf("PutProgress %d failed: %v", i, err)
					}
				}(i)
			}
			wg.Wait()

			got, err := repo.GetProgress(ctx, "c")
			if err != nil {
				t.Fatalf("GetProgress failed: %v", err)
			}
			want := fmt.Sprintf("lesson-%d", int(got.ProgressPercentage))
			if len(got.CompletedLessons) != 1 || got.CompletedLessons[0] != want {
				t.Errorf("stored record mixes writes: %+v", got)
			}
		})
	}
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	p := &domain.CourseProgress{CourseID: "c", CompletedLessons: []string{"lesson-1"}}
	if err := repo.PutProgress(ctx, "c", p); err != nil {
		t.Fatalf("PutProgress failed: %v", err)
	}
	p.CompletedLessons[0] = "mutated"

	got, _ := repo.GetProgress(ctx, "c")
	if got.CompletedLessons[0] != "lesson-1" {
		t.Fatalf("stored record changed through caller's slice: %v", got.CompletedLessons)
	}
	got.CompletedLessons[0] = "mutated"
	again, _ := repo.GetProgress(ctx, "c")
	if again.CompletedLessons[0] != "lesson-1" {
		t.Fatalf("stored record changed through returned slice: %v", again.CompletedLessons)
	}
}

func TestSQLiteDefaultDSNIsInMemory(t *testing.T) {
	repo, err := NewSQLite("")
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestNewBackends(t *testing.T) {
	repo, err := New(BackendMemory, "")
	if err != nil {
		t.Fatalf("New(memory) failed: %v", err)
	}
	if _, ok := repo.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", repo)
	}

	if _, err := New("redis", ""); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestWithPragmas(t *testing.T) {
	if got := withPragmas(DefaultSQLiteDSN, true); got != DefaultSQLiteDSN+"&_pragma=busy_timeout(5000)" {
		t.Errorf("unexpected memory dsn %q", got)
	}
	got := withPragmas("/tmp/p.db", false)
	want := "/tmp/p.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
