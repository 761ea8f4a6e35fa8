package usecase

import (
	"context"

	"cv-composer/internal/domain"

	"github.com/pkg/errors"
)

// ActiveProfileProvider yields the profile every surface renders.
type ActiveProfileProvider interface {
	ActiveProfile(ctx context.Context) (*domain.Profile, error)
}

// StoreProfileProvider prefers the lowest-id profile flagged active and
// falls back to the lowest-id profile overall. An empty store yields
// domain.ErrNoProfile.
type StoreProfileProvider struct {
	store ProfileStore
}

func NewStoreProfileProvider(store ProfileStore) *StoreProfileProvider {
	return &StoreProfileProvider{store: store}
}

func (p *StoreProfileProvider) ActiveProfile(ctx context.Context) (*domain.Profile, error) {
	prof, err := p.store.FirstActiveProfile(ctx)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	prof, err = p.store.FirstProfile(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoProfile
		}
		return nil, err
	}
	return prof, nil
}
