package cache

import (
	"context"
	"sync"
	"time"

	"backoffice/internal/domain/service"
)

type memoryEntry struct {
	brand   string
	expires time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates a process-local brand cache. Expired entries are dropped on read.
func NewMemoryCache(now func() time.Time) service.BrandCache {
	return &memoryCache{entries: make(map[string]memoryEntry), now: now}
}

func (c *memoryCache) Get(_ context.Context, sku string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[sku]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		c.mu.Lock()
		if current, ok := c.entries[sku]; ok && current == entry {
			delete(c.entries, sku)
		}
		c.mu.Unlock()

		return "", false, nil
	}

	return entry.brand, true, nil
}

func (c *memoryCache) Set(_ context.Context, sku, brand string, ttl time.Duration) error {
	entry := memoryEntry{brand: brand}
	if ttl > 0 {
		entry.expires = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[sku] = entry
	c.mu.Unlock()

	return nil
}
