package cache

import (
	"context"
	"time"
)

// noop is a Cache that stores nothing. Every Get is a miss.
type noop struct{}

// NewNoop returns a cache that never hits. Used when caching is disabled
// and in tests.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(ctx context.Context, key string) (string, error) {
	return "", ErrMiss
}

func (noop) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (noop) Del(ctx context.Context, key string) error {
	return nil
}
