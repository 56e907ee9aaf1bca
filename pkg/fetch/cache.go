package fetch

import (
	"sync"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// entry pairs a FetchCacheEntry's metadata with the text blob it describes.
type entry struct {
	meta models.FetchCacheEntry
	text string
}

// Cache is a thread-safe, in-memory, TTL-indexed store of prior fetch
// results, keyed by URL. Expired entries are cleaned up lazily on Get,
// the same double-checked-locking shape used for runbook content caching:
// no background goroutine, and a concurrent Put racing an expiry check
// never clobbers fresher data.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewCache creates a cache with the given entry lifetime.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{entries: make(map[string]*entry), ttl: ttl}
}

// Get returns a result whose fetched text is at least minLen bytes long
// and that has not expired. The zero value and false are returned on any
// cache miss (absent, expired, or too short).
func (c *Cache) Get(url string, minLen int) (models.FetchResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return models.FetchResult{}, false
	}

	if time.Since(e.meta.FetchedAt) > c.ttl {
		c.mu.Lock()
		if current, ok := c.entries[url]; ok && time.Since(current.meta.FetchedAt) > c.ttl {
			delete(c.entries, url)
		}
		c.mu.Unlock()
		return models.FetchResult{}, false
	}

	if len(e.text) < minLen {
		return models.FetchResult{}, false
	}

	return models.FetchResult{
		URL:           url,
		Text:          e.text,
		Method:        models.NewCachedMethod(e.meta.Method),
		ContentType:   e.meta.ContentType,
		TokenEstimate: e.meta.TokenEstimate,
		ContentLength: e.meta.ContentLength,
		FetchedAt:     e.meta.FetchedAt,
	}, true
}

// Put records a successful fetch result for future lookups.
func (c *Cache) Put(r models.FetchResult) {
	if !r.OK() {
		return
	}
	c.mu.Lock()
	c.entries[r.URL] = &entry{
		meta: models.FetchCacheEntry{
			URL:           r.URL,
			Method:        r.Method,
			ContentType:   r.ContentType,
			TokenEstimate: r.TokenEstimate,
			ContentLength: r.ContentLength,
			FetchedAt:     r.FetchedAt,
		},
		text: r.Text,
	}
	c.mu.Unlock()
}
