package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest is the body for POST /api/items.
type CreateItemRequest struct {
	ItemCode     string           `json:"item_code"`
	ItemName     string           `json:"item_name"`
	Description  string           `json:"description,omitempty"`
	UOM          string           `json:"uom,omitempty"`
	Category     string           `json:"category,omitempty"`
	ReorderLevel *decimal.Decimal `json:"reorder_level,omitempty"`
}

// ItemResponse mirrors a catalog item.
type ItemResponse struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	Description  string          `json:"description,omitempty"`
	UOM          string          `json:"uom,omitempty"`
	Category     string          `json:"category,omitempty"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
