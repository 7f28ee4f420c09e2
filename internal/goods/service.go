package goods

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goods
type Repository interface {
	// List returns copies of the current records in seed order.
	List(ctx context.Context) ([]*Record, error)
	// SetPurpose reports false when no record has the given id; that is not an error.
	SetPurpose(ctx context.Context, id string, purpose Purpose) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.List(ctx)
}

// Visible returns the records passing the filter, in store order.
func (s *Service) Visible(ctx context.Context, f Filter) ([]*Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing goods: %w", err)
	}

	return VisibleRecords(records, f), nil
}

// Counts aggregates the whole store, not the filtered view.
func (s *Service) Counts(ctx context.Context) ([]PurposeCount, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing goods: %w", err)
	}

	return PurposeCounts(records), nil
}

// SetPurpose reclassifies one record. An unknown id is ignored and reported as updated=false.
func (s *Service) SetPurpose(ctx context.Context, id string, purpose Purpose) (bool, error) {
	if !purpose.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidPurpose, purpose)
	}

	updated, err := s.repo.SetPurpose(ctx, id, purpose)
	if err != nil {
		return false, fmt.Errorf("setting purpose of %s: %w", id, err)
	}

	return updated, nil
}
