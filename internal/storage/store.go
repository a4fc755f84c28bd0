// Package storage defines the key-value contract the journal core is written
// against and the backends that satisfy it.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat byte-oriented key-value store.
type Store interface {
	// Get returns the value at key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set creates or replaces the value at key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
