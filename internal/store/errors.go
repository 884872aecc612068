package store

import "errors"

// Sentinel errors classifying every failure the core can surface.
// Callers branch on them with errors.Is; the concrete message carries
// the operation context.
var (
	// ErrInvalidInput marks a caller-supplied title or poster URL that
	// failed validation. The operation had no effect; re-prompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a watchlist or item id that does not resolve.
	// The caller is operating on stale state; the operation had no
	// effect.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFormat marks a share payload that could not be parsed
	// or failed structural validation. Nothing was imported.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrPersistence marks a durable write that did not complete. The
	// in-memory change must be treated as not-yet-durable and the user
	// told it may be lost on reload.
	ErrPersistence = errors.New("persistence failure")
)
