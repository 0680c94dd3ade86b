// Package cache holds upstream GraphQL responses for a bounded time, grouped
// by invalidation tags ("collections", "products") so that a webhook can drop
// everything derived from one kind of catalog data.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"ambalaje-storefront/internal/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	data []byte
	tags []string
}

type flight struct {
	tags []string
	seen []uint64
}

type Cache struct {
	lru   *expirable.LRU[string, entry]
	group singleflight.Group

	// mu guards gens and inflight. Revalidate bumps the generation of a tag so
	// fills started before it do not store their result.
	mu       sync.Mutex
	gens     map[string]uint64
	inflight map[string]*flight
}

func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru:      expirable.NewLRU[string, entry](size, nil, ttl),
		gens:     make(map[string]uint64),
		inflight: make(map[string]*flight),
	}
}

// Get returns the cached bytes for key.
func (c *Cache) Get(key string) ([]byte, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Set stores data under key, tagged with tags.
func (c *Cache) Set(key string, data []byte, tags []string) {
	c.lru.Add(key, entry{data: data, tags: slices.Clone(tags)})
}

// GetOrFill returns the cached value for key or runs fill once for all
// concurrent callers asking for the same key. Failed fills are not cached.
//
// fill runs on a context that keeps ctx's values but not its cancellation, so
// one caller giving up does not fail the others waiting on the same key. Each
// caller still stops waiting when its own ctx is done.
func (c *Cache) GetOrFill(ctx context.Context, key string, tags []string, fill func(context.Context) ([]byte, error)) ([]byte, error) {
	if data, ok := c.Get(key); ok {
		metrics.CacheHits.Inc()
		return data, nil
	}
	metrics.CacheMisses.Inc()

	fillCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		f := c.begin(key, tags)
		defer c.end(key, f)

		data, err := fill(fillCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, data, f)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Cache) begin(key string, tags []string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := &flight{tags: tags, seen: make([]uint64, len(tags))}
	for i, t := range tags {
		f.seen[i] = c.gens[t]
	}
	c.inflight[key] = f
	return f
}

func (c *Cache) end(key string, f *flight) {
	c.mu.Lock()
	if c.inflight[key] == f {
		delete(c.inflight, key)
	}
	c.mu.Unlock()
}

// store keeps data unless one of its tags was revalidated after the fill began.
func (c *Cache) store(key string, data []byte, f *flight) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range f.tags {
		if c.gens[t] != f.seen[i] {
			return false
		}
	}
	c.Set(key, data, f.tags)
	return true
}

// Revalidate drops every entry tagged with tag and reports how many went.
// Fills for that tag still in flight are detached: their result is returned
// to the callers already waiting but is not stored, and new callers start a
// fresh fill.
func (c *Cache) Revalidate(tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[tag]++
	for key, f := range c.inflight {
		if slices.Contains(f.tags, tag) {
			c.group.Forget(key)
		}
	}

	removed := 0
	for _, key := range c.lru.Keys() {
		e, ok := c.lru.Peek(key)
		if !ok || !slices.Contains(e.tags, tag) {
			continue
		}
		if c.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

func (c *Cache) Purge() {
	c.lru.Purge()
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
