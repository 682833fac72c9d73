package feed

import (
	"sync"
	"time"
)

// DefaultCacheDuration is how long an assembled feed page stays valid.
const DefaultCacheDuration = 5 * time.Minute

// Cache holds assembled feed results keyed by request signature. Injected
// so the in-process implementation can be swapped for a shared cache or a
// fake in tests.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

type cacheEntry struct {
	value    interface{}
	storedAt time.Time
}

// MemoryCache is a process-local TTL map. Entries are evicted lazily on
// the first read past their TTL; there is no background sweep. Each
// process instance keeps its own cache, which at this scale is an accepted
// tradeoff over a shared cache service.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheDuration
	}
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached value for key, treating an expired entry as
// absent and deleting it on the way out.
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set unconditionally overwrites the entry with a fresh timestamp. Two
// requests racing to fill the same miss compute the same result from the
// same data, so last write wins without locking at the caller.
func (c *MemoryCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}
