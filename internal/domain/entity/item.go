package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog SKU. The inventory core only reads ReorderLevel (low-stock
// threshold, zero disables alerts) and Category; the rest belongs to the
// catalog module.
type Item struct {
	ID           string
	TenantID     string
	ItemCode     string
	ItemName     string
	Description  string
	UOM          string
	Category     string
	ReorderLevel decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
