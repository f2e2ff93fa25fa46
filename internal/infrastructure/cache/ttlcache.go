// Package cache provides small in-process caches owned by the dependency
// graph, so tests can substitute fakes and client instances don't collide.
package cache

import (
	"sync"
	"time"
)

// TTLCache holds a single cached payload with a fixed time-to-live. It
// fronts read-heavy, slow-changing upstream endpoints (domain listings)
// and is keyed globally: the underlying data is tenant-agnostic and
// filtering happens downstream. Two concurrent callers may both refresh
// on expiry; that costs a redundant upstream call, never stale-beyond-TTL
// data.
type TTLCache[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	payload  T
	cachedAt time.Time
	valid    bool
}

func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached payload if it is still fresh.
func (c *TTLCache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || c.now().Sub(c.cachedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.payload, true
}

// Set overwrites the cached payload atomically.
func (c *TTLCache[T]) Set(payload T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.cachedAt = c.now()
	c.valid = true
}

// Invalidate drops the cached payload.
func (c *TTLCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
