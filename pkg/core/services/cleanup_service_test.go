package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pthana/linkshort/pkg/adapters/repository/sqlite"
	"github.com/pthana/linkshort/pkg/core/domain"
)

func newTestCleanup(t *testing.T) (*CleanupService, *LinkService) {
	t.Helper()
	dbSeq++
	repo, err := sqlite.NewSQLiteRepository(fmt.Sprintf("file:cleandb%d?mode=memory&cache=shared", dbSeq))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewCleanupService(repo), NewLinkService(repo, nil)
}

func TestCleanupRejectsNonPositiveWindows(t *testing.T) {
	cleanup, _ := newTestCleanup(t)
	ctx := context.Background()

	for _, window := range []time.Duration{0, -5 * 24 * time.Hour} {
		if _, err := cleanup.Cleanup(ctx, window); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Cleanup(%v) = %v, want ErrValidation", window, err)
		}
	}
}

func TestCleanupDeletesOnlyStaleLinks(t *testing.T) {
	cleanup, links := newTestCleanup(t)
	ctx := context.Background()

	stale, err := links.Shorten(ctx, "https://example.com/stale")
	if err != nil {
		t.Fatalf("shorten failed: %v", err)
	}

	// Let the first link age past a short window, then create a fresh one.
	time.Sleep(100 * time.Millisecond)
	fresh, err := links.Shorten(ctx, "https://example.com/fresh")
	if err != nil {
		t.Fatalf("shorten failed: %v", err)
	}

	deleted, err := cleanup.Cleanup(ctx, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	if _, err := links.Resolve(ctx, stale.ShortCode); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted link resolved, err = %v", err)
	}
	if _, err := links.Resolve(ctx, fresh.ShortCode); err != nil {
		t.Errorf("fresh link should resolve, err = %v", err)
	}
}
