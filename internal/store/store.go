// Package store defines the namespaced persistent key-value mechanism
// backing all entities, plus a typed JSON codec over it.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or was deleted.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a namespaced persistent key-value store. Each key is updated
// atomically on its own; there are no multi-key transactions.
type Store interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
