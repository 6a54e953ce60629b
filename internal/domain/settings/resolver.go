package settings

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/jewel-store/internal/domain/pricing"
)

// Resolver combines persisted settings with static configuration defaults.
type Resolver struct {
	store    Store
	defaults pricing.Config
}

// NewResolver creates a Resolver.
func NewResolver(store Store, defaults pricing.Config) *Resolver {
	return &Resolver{store: store, defaults: defaults}
}

// Load returns the current settings snapshot.
func (r *Resolver) Load(ctx context.Context) (Settings, error) {
	s, err := r.store.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	return s, nil
}

// Pricing returns the effective pricing configuration.
func (r *Resolver) Pricing(ctx context.Context) (pricing.Config, error) {
	s, err := r.Load(ctx)
	if err != nil {
		return pricing.Config{}, err
	}
	return s.Pricing(r.defaults), nil
}
