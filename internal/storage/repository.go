package storage

import (
	"context"

	"watchdeck/internal/domain"
)

// Repository is the durability boundary: the whole collection of
// watchlists is loaded and saved as one document. This allows us to
// swap storage implementations without changing the store logic that
// sits on top of it.
type Repository interface {
	// LoadCollection returns the full persisted collection. An absent
	// or unreadable document resolves to an empty collection, not an
	// error; only a genuine storage failure errors.
	LoadCollection(ctx context.Context) ([]domain.Watchlist, error)

	// SaveCollection replaces the persisted document with the given
	// collection. A returned error means the write did not complete
	// and the caller must not claim the change is durable.
	SaveCollection(ctx context.Context, lists []domain.Watchlist) error

	// Close gracefully shuts down the repository.
	Close() error
}
