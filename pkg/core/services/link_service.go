package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pthana/linkshort/pkg/core/codec"
	"github.com/pthana/linkshort/pkg/core/domain"
	"github.com/pthana/linkshort/pkg/ports"

	"github.com/rs/zerolog/log"
)

type LinkService struct {
	repo  ports.LinkRepository
	cache ports.LinkCache // may be nil when caching is disabled
}

func NewLinkService(repo ports.LinkRepository, cache ports.LinkCache) *LinkService {
	return &LinkService{repo: repo, cache: cache}
}

func validateURL(originalURL string) error {
	if originalURL == "" {
		return fmt.Errorf("%w: url is empty", domain.ErrValidation)
	}
	if !strings.HasPrefix(originalURL, "http://") && !strings.HasPrefix(originalURL, "https://") {
		return fmt.Errorf("%w: url must start with http:// or https://", domain.ErrValidation)
	}
	return nil
}

// Shorten validates the URL, inserts a record and derives its short code from
// the assigned ID. No collision handling exists because none is possible: the
// code is a bijective function of a never-reused identifier.
func (s *LinkService) Shorten(ctx context.Context, originalURL string) (*domain.Link, error) {
	if err := validateURL(originalURL); err != nil {
		return nil, err
	}

	link := &domain.Link{OriginalURL: originalURL}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}

	code := codec.Encode(link.ID)
	if err := s.repo.SetShortCode(ctx, link.ID, code); err != nil {
		return nil, err
	}
	link.ShortCode = code

	log.Debug().Int64("id", link.ID).Str("short_code", code).Msg("link created")
	return link, nil
}

// Resolve returns the original URL for a code and bumps its click counter.
// The cache only short-circuits the lookup; the increment always goes to the
// store, and a miss there evicts the stale cache entry.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	if _, err := codec.Decode(code); err != nil {
		return "", err
	}

	if s.cache != nil {
		if originalURL, ok := s.cache.Get(code); ok {
			if _, err := s.repo.IncrementClick(ctx, code); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					s.cache.Delete(code)
				}
				return "", err
			}
			return originalURL, nil
		}
	}

	link, err := s.repo.IncrementClick(ctx, code)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Set(code, link.OriginalURL)
	}
	return link.OriginalURL, nil
}

// ClickCount returns the raw usage counter for a code.
func (s *LinkService) ClickCount(ctx context.Context, code string) (int64, error) {
	if _, err := codec.Decode(code); err != nil {
		return 0, err
	}

	link, err := s.repo.GetByShortCode(ctx, code)
	if err != nil {
		return 0, err
	}
	return link.ClickCount, nil
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// List returns links in creation order for pagination.
func (s *LinkService) List(ctx context.Context, limit, offset int) ([]domain.Link, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

var _ ports.LinkService = (*LinkService)(nil)
