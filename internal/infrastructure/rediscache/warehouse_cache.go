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

var _ repository.WarehouseRepository = (*WarehouseCache)(nil)

// WarehouseCache decorates a WarehouseRepository with per-warehouse read
// caching. Updates invalidate; listings pass through.
type WarehouseCache struct {
	inner  repository.WarehouseRepository
	client *redis.Client
	ttl    time.Duration
}

// NewWarehouseCache wraps inner. client may be nil.
func NewWarehouseCache(inner repository.WarehouseRepository, client *redis.Client, ttl time.Duration) *WarehouseCache {
	return &WarehouseCache{inner: inner, client: client, ttl: ttl}
}

func warehouseKey(tenantID, id string) string {
	return fmt.Sprintf("warehouse:%s:%s", tenantID, id)
}

func (c *WarehouseCache) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	if err := c.inner.Create(ctx, warehouse); err != nil {
		return err
	}
	if c.client != nil {
		c.client.Del(ctx, warehouseKey(warehouse.TenantID, warehouse.ID))
	}
	return nil
}

func (c *WarehouseCache) GetByID(ctx context.Context, tenantID, id string) (*entity.Warehouse, error) {
	if c.client != nil {
		if raw, err := c.client.Get(ctx, warehouseKey(tenantID, id)).Bytes(); err == nil {
			var w entity.Warehouse
			if err := json.Unmarshal(raw, &w); err == nil {
				return &w, nil
			}
		}
	}

	w, err := c.inner.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if raw, err := json.Marshal(w); err == nil {
			c.client.Set(ctx, warehouseKey(tenantID, id), raw, c.ttl)
		}
	}
	return w, nil
}

func (c *WarehouseCache) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	if err := c.inner.Update(ctx, warehouse); err != nil {
		return err
	}
	if c.client != nil {
		c.client.Del(ctx, warehouseKey(warehouse.TenantID, warehouse.ID))
	}
	return nil
}

func (c *WarehouseCache) ListActive(ctx context.Context, tenantID string) ([]*entity.Warehouse, error) {
	return c.inner.ListActive(ctx, tenantID)
}
