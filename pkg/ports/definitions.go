package ports

import (
	"context"
	"time"

	"github.com/pthana/linkshort/pkg/core/domain"
)

// LinkRepository defines storage operations for links. The repository owns
// identifier allocation and all counter atomicity; callers never read-modify-write.
type LinkRepository interface {
	// Create inserts a new record with a zero click count and assigns its ID.
	Create(ctx context.Context, link *domain.Link) error
	// SetShortCode persists the derived code for an existing record.
	SetShortCode(ctx context.Context, id int64, code string) error
	GetByShortCode(ctx context.Context, code string) (*domain.Link, error)
	// IncrementClick atomically bumps click_count by one and refreshes
	// updated_at, returning the updated record. ErrNotFound if no row matches.
	IncrementClick(ctx context.Context, code string) (*domain.Link, error)
	// List returns records ordered by creation time ascending.
	List(ctx context.Context, limit, offset int) ([]domain.Link, error)
	// DeleteInactive removes every record whose updated_at is older than
	// now-olderThan in a single bulk statement and returns the removed count.
	DeleteInactive(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// LinkCache is an optional alias->URL read cache in front of the repository.
// It is never authoritative: a hit still goes through the repository for the
// click increment, and a stale hit is evicted when the increment misses.
type LinkCache interface {
	Get(code string) (string, bool)
	Set(code, originalURL string)
	Delete(code string)
	Close() error
}

// LinkService defines the business logic operations.
type LinkService interface {
	Shorten(ctx context.Context, originalURL string) (*domain.Link, error)
	Resolve(ctx context.Context, code string) (string, error)
	ClickCount(ctx context.Context, code string) (int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.Link, error)
}

// CleanupService removes links that have gone unused for a given window.
type CleanupService interface {
	Cleanup(ctx context.Context, inactiveAfter time.Duration) (int64, error)
}
