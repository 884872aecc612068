// Package identity generates the opaque unique identifiers assigned to
// watchlists and items at creation time.
package identity

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. Collisions with any other
// generated identifier are vanishingly unlikely for the lifetime of a
// dataset. It takes no input and cannot fail.
func NewID() string {
	return uuid.NewString()
}
