// Package storage is the durable key-value store behind session tokens and
// impersonation flags. Production uses Redis; tests and dev setups without a
// REDIS_URL get the in-memory store.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	// Keys returns every key starting with prefix. Used by the session
	// recovery scan and the forced-logout purge.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
