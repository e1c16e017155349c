package server

import (
	"container/list"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// ChartCache holds rendered chart images keyed by dataset snapshot, chart
// and filter. Entries expire after ttl and the least recently served entry is
// dropped at capacity. A non-positive capacity disables caching.
type ChartCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	lru        *list.List // front = most recently served
	maxEntries int
	ttl        time.Duration
	hits       atomic.Int64
	misses     atomic.Int64
}

type renderedChart struct {
	key      string
	png      []byte
	storedAt time.Time
}

// CacheStats contains cache performance statistics.
type CacheStats struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
}

// NewChartCache creates a ChartCache with the given capacity and TTL.
func NewChartCache(maxEntries int, ttl time.Duration) *ChartCache {
	return &ChartCache{
		entries:    make(map[string]*list.Element),
		lru:        list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// chartKey builds the cache key for a rendered chart. The payload range only
// matters for the scatter plot of all sites.
func chartKey(datasetID, chart string, fs model.FilterState) string {
	if chart == chartPie || !fs.IsAll() {
		return fmt.Sprintf("%s/%s/%s", datasetID, chart, fs.Site)
	}
	return fmt.Sprintf("%s/%s/%s/%g/%g", datasetID, chart, fs.Site, fs.Payload.Low, fs.Payload.High)
}

// Get returns a cached image, or nil on miss or expiration.
func (c *ChartCache) Get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil
	}
	rc := el.Value.(*renderedChart)
	if time.Since(rc.storedAt) > c.ttl {
		c.lru.Remove(el)
		delete(c.entries, key)
		c.misses.Add(1)
		return nil
	}

	c.lru.MoveToFront(el)
	c.hits.Add(1)
	return rc.png
}

// Put stores an image, evicting the least recently served entry at capacity.
func (c *ChartCache) Put(key string, png []byte) {
	if c.maxEntries <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value = &renderedChart{key: key, png: png, storedAt: time.Now()}
		c.lru.MoveToFront(el)
		return
	}

	for c.lru.Len() >= c.maxEntries {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*renderedChart).key)
	}
	c.entries[key] = c.lru.PushFront(&renderedChart{key: key, png: png, storedAt: time.Now()})
}

// Stats reports entry counts and hit rate since startup.
func (c *ChartCache) Stats() CacheStats {
	c.mu.Lock()
	entries := c.lru.Len()
	c.mu.Unlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	stats := CacheStats{
		Entries:    entries,
		MaxEntries: c.maxEntries,
		Hits:       hits,
		Misses:     misses,
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats
}
