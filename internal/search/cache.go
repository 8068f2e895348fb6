package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"cinequery/searchservice/internal/domain"
)

const cacheMaxEntries = 400

// CacheBackend is an optional external store for search responses. The
// in-process map remains the first tier either way.
type CacheBackend interface {
	Get(ctx context.Context, key string) (domain.SearchResponse, bool, error)
	Set(ctx context.Context, key string, response domain.SearchResponse, ttl time.Duration) error
}

func cacheKey(query domain.Query) string {
	text := strings.ToLower(strings.TrimSpace(query.Text))
	return text + "|" + string(query.Intent)
}

type cachedResponse struct {
	response  domain.SearchResponse
	expiresAt time.Time
}

type responseCache struct {
	ttl     time.Duration
	backend CacheBackend
	mu      sync.RWMutex
	entries map[string]cachedResponse
}

func newResponseCache(ttl time.Duration, backend CacheBackend) *responseCache {
	return &responseCache{
		ttl:     ttl,
		backend: backend,
		entries: make(map[string]cachedResponse),
	}
}

func (c *responseCache) get(ctx context.Context, key string) (domain.SearchResponse, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.response, true
	}

	if c.backend != nil {
		response, found, err := c.backend.Get(ctx, key)
		if err == nil && found {
			c.store(key, response)
			return response, true
		}
	}
	return domain.SearchResponse{}, false
}

func (c *responseCache) set(ctx context.Context, key string, response domain.SearchResponse) {
	c.store(key, response)
	if c.backend != nil {
		// Backend write failures are non-fatal: the local tier still holds
		// the entry.
		_ = c.backend.Set(ctx, key, response, c.ttl)
	}
}

func (c *responseCache) store(key string, response domain.SearchResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= cacheMaxEntries {
		c.evictExpiredLocked()
	}
	if len(c.entries) >= cacheMaxEntries {
		return
	}
	c.entries[key] = cachedResponse{
		response:  response,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *responseCache) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
