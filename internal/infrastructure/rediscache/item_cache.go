// Package rediscache provides optional read-through caching for the catalog
// repositories. A nil client disables caching: every decorator degrades to a
// pass-through, so callers never branch on whether Redis is configured.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.ItemRepository = (*ItemCache)(nil)

// ItemCache decorates an ItemRepository with per-item read caching.
// Only GetByID is cached: listings change too often to be worth it.
type ItemCache struct {
	inner  repository.ItemRepository
	client *redis.Client
	ttl    time.Duration
}

// NewItemCache wraps inner. client may be nil.
func NewItemCache(inner repository.ItemRepository, client *redis.Client, ttl time.Duration) *ItemCache {
	return &ItemCache{inner: inner, client: client, ttl: ttl}
}

func itemKey(tenantID, id string) string {
	return fmt.Sprintf("item:%s:%s", tenantID, id)
}

// Create writes through and drops any stale cached copy.
func (c *ItemCache) Create(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	if c.client != nil {
		c.client.Del(ctx, itemKey(item.TenantID, item.ID))
	}
	return nil
}

// GetByID serves from cache when possible; cache failures fall back to the
// database silently.
func (c *ItemCache) GetByID(ctx context.Context, tenantID, id string) (*entity.Item, error) {
	if c.client != nil {
		if raw, err := c.client.Get(ctx, itemKey(tenantID, id)).Bytes(); err == nil {
			var item entity.Item
			if err := json.Unmarshal(raw, &item); err == nil {
				return &item, nil
			}
		}
	}

	item, err := c.inner.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if raw, err := json.Marshal(item); err == nil {
			c.client.Set(ctx, itemKey(tenantID, id), raw, c.ttl)
		}
	}
	return item, nil
}

// List always hits the database.
func (c *ItemCache) List(ctx context.Context, tenantID, search string, includeInactive bool, limit, offset int) ([]*entity.Item, error) {
	return c.inner.List(ctx, tenantID, search, includeInactive, limit, offset)
}
