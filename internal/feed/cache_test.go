package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(DefaultCacheDuration)
	cache.now = func() time.Time { return now }

	t.Run("miss on unknown key", func(t *testing.T) {
		_, ok := cache.Get("feed:1:1:20:")
		assert.False(t, ok)
	})

	t.Run("set then get returns the value", func(t *testing.T) {
		cache.Set("feed:1:1:20:", []uint64{3, 1, 2})

		got, ok := cache.Get("feed:1:1:20:")
		require.True(t, ok)
		assert.Equal(t, []uint64{3, 1, 2}, got)
	})

	t.Run("expired entry is evicted, not just reported stale", func(t *testing.T) {
		now = now.Add(DefaultCacheDuration)

		_, ok := cache.Get("feed:1:1:20:")
		assert.False(t, ok)

		// A second lookup is still a miss: the entry is gone.
		_, ok = cache.Get("feed:1:1:20:")
		assert.False(t, ok)
		assert.Empty(t, cache.entries)
	})

	t.Run("set overwrites with a fresh timestamp", func(t *testing.T) {
		cache.Set("feed:1:1:20:", "old")
		now = now.Add(time.Minute)
		cache.Set("feed:1:1:20:", "new")
		now = now.Add(DefaultCacheDuration - time.Minute - time.Second)

		got, ok := cache.Get("feed:1:1:20:")
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})
}
