package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReservation is a soft hold on available quantity prior to a physical
// movement. While Released is false its quantity counts toward the
// ReservedQuantity of exactly one StockLevel row. ExpiresAt is advisory:
// nothing releases an expired reservation automatically.
type StockReservation struct {
	ID               string
	TenantID         string
	ItemID           string
	WarehouseID      string
	ReservedQuantity decimal.Decimal
	ReferenceType    string
	ReferenceID      string
	ReferenceNumber  string
	ReservedBy       string
	ExpiresAt        *time.Time
	Released         bool
	ReleasedAt       *time.Time
	CreatedAt        time.Time
}
