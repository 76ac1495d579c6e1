package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock categories for inventory_stock rows.
const (
	CategoryRawMaterial  = "RAW_MATERIAL"
	CategoryFinishedGood = "FINISHED_GOODS"
	CategoryConsumable   = "CONSUMABLE"
	CategorySparePart    = "SPARE_PART"
)

// StockLevel is the per (tenant, item, warehouse, location) projection kept in
// lock-step with the movement ledger. LocationID is empty when the row is not
// location-scoped. ReservedQuantity is the sum of active reservations.
type StockLevel struct {
	ID               string
	TenantID         string
	ItemID           string
	WarehouseID      string
	LocationID       string
	Category         string
	TotalQuantity    decimal.Decimal
	ReservedQuantity decimal.Decimal
	LastMovementDate time.Time
	UpdatedAt        time.Time
}

// AvailableQuantity is what can still be committed: total minus reserved.
func (s *StockLevel) AvailableQuantity() decimal.Decimal {
	return s.TotalQuantity.Sub(s.ReservedQuantity)
}
