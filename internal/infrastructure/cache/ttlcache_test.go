package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[[]string](5 * time.Minute)
	c.now = func() time.Time { return now }

	t.Run("empty cache misses", func(t *testing.T) {
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("fresh payload hits", func(t *testing.T) {
		c.Set([]string{"example.com"})
		got, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, []string{"example.com"}, got)
	})

	t.Run("payload within TTL still hits", func(t *testing.T) {
		now = now.Add(4 * time.Minute)
		_, ok := c.Get()
		assert.True(t, ok)
	})

	t.Run("expired payload misses", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("set refreshes expiry", func(t *testing.T) {
		c.Set([]string{"other.org"})
		got, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, []string{"other.org"}, got)
	})

	t.Run("invalidate drops payload", func(t *testing.T) {
		c.Invalidate()
		_, ok := c.Get()
		assert.False(t, ok)
	})
}
