package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types. The quantity on a movement is always a positive
// magnitude; direction is implied by the from/to warehouse sides.
const (
	MovementTypeGRNReceipt        = "GRN_RECEIPT"
	MovementTypeProductionIssue   = "PRODUCTION_ISSUE"
	MovementTypeProductionReturn  = "PRODUCTION_RETURN"
	MovementTypeProductionReceipt = "PRODUCTION_RECEIPT"
	MovementTypeSalesIssue        = "SALES_ISSUE"
	MovementTypeDemoIssue         = "DEMO_ISSUE"
	MovementTypeDemoReturn        = "DEMO_RETURN"
	MovementTypeDemoSold          = "DEMO_SOLD"
	MovementTypeServiceIssue      = "SERVICE_ISSUE"
	MovementTypeTransfer          = "TRANSFER"
	MovementTypeAdjustment        = "ADJUSTMENT"
	MovementTypeScrap             = "SCRAP"
)

// StockMovement is one entry of the append-only stock ledger. Once written it
// is never mutated or deleted in normal operation: it is the audit trail.
// Empty warehouse/location IDs mean "no side" / "no location".
type StockMovement struct {
	ID              string
	TenantID        string
	MovementNumber  string
	MovementType    string
	ItemID          string
	UID             string // serialized-unit identifier, when applicable
	FromWarehouseID string
	FromLocationID  string
	ToWarehouseID   string
	ToLocationID    string
	Quantity        decimal.Decimal
	ReferenceType   string
	ReferenceID     string
	ReferenceNumber string
	BatchNumber     string
	Notes           string
	MovedBy         string
	MovementDate    time.Time
	CreatedAt       time.Time
}
