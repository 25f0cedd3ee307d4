package cachemanager

import (
	"context"
	"time"
)

// ReadThrough wraps a Manager with a loader function: misses invoke the
// loader and populate the cache.
type ReadThrough[V any, I any] struct {
	cache     Manager[V]
	fn        func(ctx context.Context, input I) (V, error)
	skipCache bool
}

// NewReadThrough builds a read-through cache. skipCache bypasses the
// cache entirely, for callers that need uncached loads without changing
// their call sites.
func NewReadThrough[V any, I any](
	cache Manager[V],
	fn func(ctx context.Context, input I) (V, error),
	skipCache bool,
) *ReadThrough[V, I] {
	return &ReadThrough[V, I]{
		cache:     cache,
		fn:        fn,
		skipCache: skipCache,
	}
}

// Get returns the cached value for key, invoking the loader with input
// on a miss and caching the result with the given TTL.
func (r *ReadThrough[V, I]) Get(ctx context.Context, key string, input I, ttl time.Duration) (V, error) {
	if r.skipCache {
		return r.fn(ctx, input)
	}

	if v, ok := r.cache.Get(ctx, key); ok {
		return v, nil
	}

	v, err := r.fn(ctx, input)
	if err != nil {
		var zero V
		return zero, err
	}

	r.cache.Set(ctx, key, v, ttl)
	return v, nil
}

// Invalidate drops keys from the underlying cache.
func (r *ReadThrough[V, I]) Invalidate(ctx context.Context, keys ...string) {
	r.cache.Delete(ctx, keys...)
}
