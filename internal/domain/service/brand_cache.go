package service

import (
	"context"
	"time"
)

// BrandCache caches brand names by SKU.
type BrandCache interface {
	// Get returns the cached brand and whether the SKU was cached. An empty brand can be cached.
	Get(ctx context.Context, sku string) (string, bool, error)
	Set(ctx context.Context, sku, brand string, ttl time.Duration) error
}
