package cachemanager

import (
	"context"
	"time"
)

// ReadThrough serves reads from a cache and falls back to load on a miss,
// caching whatever load returns successfully.
type ReadThrough[V any] struct {
	cache    CacheManager[V]
	load     func(ctx context.Context, key string) (V, error)
	disabled bool
}

// NewReadThrough wires load behind cache. When disabled every Get calls load.
func NewReadThrough[V any](
	cache CacheManager[V],
	load func(ctx context.Context, key string) (V, error),
	disabled bool,
) *ReadThrough[V] {
	return &ReadThrough[V]{
		cache:    cache,
		load:     load,
		disabled: disabled,
	}
}

func (r *ReadThrough[V]) Get(ctx context.Context, key string, ttl time.Duration) (V, error) {
	if r.disabled {
		return r.load(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

// Invalidate drops key so the next Get reloads it.
func (r *ReadThrough[V]) Invalidate(ctx context.Context, key string) {
	_ = r.cache.Delete(ctx, key)
}
