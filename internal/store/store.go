// Package store provides keyed record storage for the services. Records are
// grouped into collections by owner (typically a user ID) and addressed by ID
// within the collection. Implementations are safe for concurrent use.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist in its collection.
var ErrNotFound = errors.New("store: record not found")

// Store is a collection-per-owner record store.
type Store[T any] interface {
	// Get returns the record with the given ID in owner's collection.
	Get(ctx context.Context, owner, id string) (T, error)
	// List returns owner's records in insertion order. An unknown owner has
	// an empty collection.
	List(ctx context.Context, owner string) ([]T, error)
	// Put inserts or replaces a record.
	Put(ctx context.Context, owner, id string, v T) error
	// Delete removes a record, returning ErrNotFound if it does not exist.
	Delete(ctx context.Context, owner, id string) error
}
