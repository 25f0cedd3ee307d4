// Package cachemanager provides TTL caching for decoded catalog
// documents, so repeated loads of unchanged files skip the codec.
package cachemanager

import (
	"context"
	"time"
)

// Manager is the caching interface used by the service layer.
type Manager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
}
