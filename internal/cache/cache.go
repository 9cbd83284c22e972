// Package cache provides a fingerprint-keyed memo of synthesis results with
// single-flight coalescing: concurrent lookups for the same key share one
// computation instead of issuing duplicate remote calls.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by key with a bounded LRU. Entries are immutable
// after insertion; eviction is the only destructive operation. Unrelated
// keys proceed fully in parallel; no lock is held across a computation.
type Cache[V any] struct {
	entries *lru.Cache[string, V]
	flight  singleflight.Group
}

// New creates a cache bounded to size entries.
func New[V any](size int) (*Cache[V], error) {
	entries, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{entries: entries}, nil
}

// Get returns the cached value for key, if present.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.entries.Get(key)
}

// Add stores a value under key. Existing entries are never mutated; a
// re-Add of the same key replaces the entry wholesale.
func (c *Cache[V]) Add(key string, v V) {
	c.entries.Add(key, v)
}

// Len returns the number of stored entries. In-flight computations are not
// entries and cannot be evicted.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// Do runs fn once per key across concurrent callers: the first caller drives
// the computation and completes or fails it on behalf of everyone coalesced
// on the same key. A waiter whose context is canceled returns promptly with
// ctx.Err() while the flight keeps running for the remaining waiters. The
// result is not stored; callers Add on success so a failed flight leaves no
// trace.
func (c *Cache[V]) Do(ctx context.Context, key string, fn func() (V, error)) (V, error) {
	ch := c.flight.DoChan(key, func() (any, error) {
		return fn()
	})
	select {
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}
