package utils

import (
	"sync"
	"time"
)

// WordSetCache keeps loaded word sets (stop-word lists) by key so repeated
// runs in one process do not re-read and re-parse the corpus. Only the
// corpus is cached; nothing computed by an analysis run is stored here.
type WordSetCache struct {
	mu     sync.RWMutex
	items  map[string]CacheItem
	hits   int
	misses int
}

type CacheItem struct {
	words      map[string]struct{}
	hits       int
	lastAccess time.Time
}

func NewWordSetCache() *WordSetCache {
	return &WordSetCache{
		items: make(map[string]CacheItem),
	}
}

// GetOrLoad returns the set stored under key, calling load on a miss. A
// failed load is not cached.
func (c *WordSetCache) GetOrLoad(key string, load func() (map[string]struct{}, error)) (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, exists := c.items[key]; exists {
		c.hits += 1
		item.hits += 1
		item.lastAccess = time.Now()
		c.items[key] = item
		return item.words, nil
	}

	c.misses += 1
	words, err := load()
	if err != nil {
		return nil, err
	}
	c.items[key] = CacheItem{
		words:      words,
		lastAccess: time.Now(),
	}
	return words, nil
}

func (c *WordSetCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *WordSetCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	}
	return 0.0
}
