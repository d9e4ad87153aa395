package settings

import "sync"

// localCache mirrors the last value this process observed or wrote per key.
// Entries are never evicted.
type localCache struct {
	mu     sync.RWMutex
	values map[string]any
}

func newLocalCache() *localCache {
	return &localCache{values: make(map[string]any)}
}

func (c *localCache) tryGet(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *localCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

func (c *localCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
