// Package cache provides the result cache used by the flight catalog.
// A Redis-backed implementation serves production; a no-op implementation
// serves tests and cache-disabled deployments.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is not present.
var ErrMiss = errors.New("cache miss")

// Cache is a minimal string cache with TTL semantics.
type Cache interface {
	// Get returns the cached value for key, or ErrMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes key.
	Del(ctx context.Context, key string) error
}
