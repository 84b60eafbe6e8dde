package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// CodeGenerator generates random short codes.
type CodeGenerator func() string

// Service creates and resolves short links.
type Service struct {
	store        Repository
	generateCode CodeGenerator
	maxAttempts  int
	now          func() time.Time
}

// NewService creates a short link service. maxAttempts bounds how many codes
// are tried when the store reports a clash; values below 1 mean a single try.
func NewService(store Repository, generator CodeGenerator, maxAttempts int) *Service {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Service{
		store:        store,
		generateCode: generator,
		maxAttempts:  maxAttempts,
		now:          time.Now,
	}
}

// Create validates targetURL and stores it under a freshly generated code.
// Identical targets are not deduplicated.
func (s *Service) Create(ctx context.Context, targetURL string) (*ShortLink, error) {
	if _, err := ParseTarget(targetURL); err != nil {
		return nil, err
	}

	for range s.maxAttempts {
		link := &ShortLink{
			Code:      Code(s.generateCode()),
			TargetURL: targetURL,
			CreatedAt: s.now().UTC(),
		}

		err := s.store.Insert(ctx, link)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrDuplicateCode) {
			return nil, fmt.Errorf("%w: insert %q: %w", ErrStorage, link.Code, err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrCollisionExhausted, s.maxAttempts)
}

// Resolve returns the short link stored under code. Matching is exact.
func (s *Service) Resolve(ctx context.Context, code Code) (*ShortLink, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("%w: find %q: %w", ErrStorage, code, err)
	}

	return link, nil
}
