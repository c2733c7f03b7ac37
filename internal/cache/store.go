package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss reports that a key is not present in the backing store.
var ErrMiss = errors.New("cache miss")

// Store is a key-value store with per-key expiry. Implementations must treat
// Set as atomic: the whole value replaces the previous one or nothing changes.
type Store interface {
	// Get returns the stored value and its remaining lifetime.
	// A missing or expired key yields ErrMiss.
	Get(ctx context.Context, key string) ([]byte, time.Duration, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
