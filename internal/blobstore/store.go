package blobstore

import (
	"context"
	"io"
	"time"
)

// Store is an asynchronous key-value byte store.
type Store interface {
	io.Closer

	// Get returns the payload stored under key, or common.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Insert stores payload under key, overwriting any previous value.
	// A nil expiry keeps the entry until it is removed.
	Insert(ctx context.Context, key string, payload []byte, expiry *time.Time) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys returns all live keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

func expired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && !now.Before(*expiresAt)
}
