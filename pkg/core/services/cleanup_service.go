package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pthana/linkshort/pkg/core/domain"
	"github.com/pthana/linkshort/pkg/ports"

	"github.com/rs/zerolog/log"
)

type CleanupService struct {
	repo ports.LinkRepository
}

func NewCleanupService(repo ports.LinkRepository) *CleanupService {
	return &CleanupService{repo: repo}
}

// Cleanup deletes every link whose updated_at has not been refreshed within
// inactiveAfter and returns the number removed. A zero or negative window is
// rejected rather than guessed at: zero would wipe the whole table.
func (s *CleanupService) Cleanup(ctx context.Context, inactiveAfter time.Duration) (int64, error) {
	if inactiveAfter <= 0 {
		return 0, fmt.Errorf("%w: inactivity window must be positive", domain.ErrValidation)
	}

	deleted, err := s.repo.DeleteInactive(ctx, inactiveAfter)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Dur("window", inactiveAfter).Msg("inactive links removed")
	}
	return deleted, nil
}

var _ ports.CleanupService = (*CleanupService)(nil)
