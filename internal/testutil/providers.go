package testutil

import (
	"context"

	"football-live-service/internal/domain"
	"football-live-service/internal/providers"
)

// GoodProvider returns the provided matches for every day with no error.
type GoodProvider struct {
	Matches []domain.Match
}

func (p GoodProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	_ = ctx
	_ = dateKey
	return p.Matches, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	return nil, p.Err
}

// EmptyProvider returns no matches, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	return []domain.Match{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	return nil, providers.ErrProviderUnavailable
}
