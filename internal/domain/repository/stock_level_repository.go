package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockLevelFilter narrows stock level listings.
type StockLevelFilter struct {
	WarehouseID string
	ItemID      string
	Category    string
	LowStock    bool // only rows at or below the item's reorder level
	Limit       int
	Offset      int
}

// StockSnapshot is the joined stock/item view the alert engine works from.
type StockSnapshot struct {
	ItemID       string
	ItemCode     string
	ItemName     string
	WarehouseID  string
	Available    decimal.Decimal
	ReorderLevel decimal.Decimal
}

// StockLevelRepository is the port for the per-key stock projection.
// The mutation methods are the single point of contention in the system and
// must be implemented as atomic/conditional updates, never read-then-write.
type StockLevelRepository interface {
	Get(ctx context.Context, tenantID, itemID, warehouseID, locationID string) (*entity.StockLevel, error)
	List(ctx context.Context, tenantID string, filter StockLevelFilter) ([]*entity.StockLevel, error)

	// ApplyDelta atomically adds delta (possibly negative) to total_quantity
	// for the given key, upserting a fresh row with the given category when the
	// key does not exist yet.
	ApplyDelta(ctx context.Context, tenantID, itemID, warehouseID, locationID string, delta decimal.Decimal, category string) error

	// ReserveIfAvailable increments reserved_quantity by qty only when
	// total_quantity - reserved_quantity >= qty, in one conditional statement.
	// Returns false when the condition does not hold (or the row is missing).
	ReserveIfAvailable(ctx context.Context, tenantID, itemID, warehouseID string, qty decimal.Decimal) (bool, error)

	// AdjustReserved unconditionally adds delta to reserved_quantity (used by
	// release, where the hold being returned is already accounted for).
	AdjustReserved(ctx context.Context, tenantID, itemID, warehouseID string, delta decimal.Decimal) error

	// Snapshot returns the joined stock/item view for one (item, warehouse)
	// key, or nil when no stock row exists.
	Snapshot(ctx context.Context, tenantID, itemID, warehouseID string) (*StockSnapshot, error)

	// ListBelowReorder returns every (item, warehouse) snapshot of the tenant
	// whose available quantity is at or below the item's positive reorder
	// level. Bulk path for the periodic sweep.
	ListBelowReorder(ctx context.Context, tenantID string) ([]StockSnapshot, error)
}
