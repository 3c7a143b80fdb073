package tracekit

import (
	"os"
	"sync"
	"time"
)

// ResolutionCache memoizes ResolveFile outcomes keyed by each file's size
// and modification time, so repeated scans of a large tree resolve every
// unchanged file once. Only successful resolutions are stored; failures
// are re-attempted on the next call.
//
// The cache is safe for concurrent use.
//
// Example:
//
//	cache := tracekit.NewResolutionCache()
//	for _, path := range paths {
//		res := cache.Resolve(path)
//		if res.Resolved() {
//			fmt.Println(path, res.Version, res.ByteOrder)
//		}
//	}
//	fmt.Printf("hit rate %.0f%%\n", cache.Stats().HitRate*100)
type ResolutionCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	hits    int64
	misses  int64
}

type cacheEntry struct {
	size    int64
	modTime time.Time
	res     Resolution
}

// CacheStatistics summarizes cache effectiveness.
type CacheStatistics struct {
	Hits    int64
	Misses  int64
	Size    int
	HitRate float64
}

// NewResolutionCache returns an empty cache.
func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{entries: make(map[string]cacheEntry)}
}

// Resolve returns the cached resolution for path when the file is
// unchanged, and otherwise resolves it fresh, caching a successful
// outcome.
func (c *ResolutionCache) Resolve(path string) Resolution {
	info, err := os.Stat(path)
	if err != nil {
		// Unstattable files go through the resolver for the usual
		// open diagnostic.
		c.recordMiss()
		return ResolveFile(path)
	}

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		c.recordHit()
		return entry.res
	}

	c.recordMiss()
	res := ResolveFile(path)
	if res.Resolved() {
		c.mu.Lock()
		c.entries[path] = cacheEntry{size: info.Size(), modTime: info.ModTime(), res: res}
		c.mu.Unlock()
	}
	return res
}

// Invalidate drops the cached resolution for path.
func (c *ResolutionCache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every cached resolution and resets the counters.
func (c *ResolutionCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.hits = 0
	c.misses = 0
	c.mu.Unlock()
}

// Stats returns a snapshot of the cache counters.
func (c *ResolutionCache) Stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := CacheStatistics{
		Hits:   c.hits,
		Misses: c.misses,
		Size:   len(c.entries),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

func (c *ResolutionCache) recordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

func (c *ResolutionCache) recordMiss() {
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
}
