package entity

import "time"

// Demo loan statuses. ISSUED is the only non-terminal state.
const (
	DemoStatusIssued   = "ISSUED"
	DemoStatusReturned = "RETURNED"
	DemoStatusSold     = "SOLD"
)

// DemoLoan tracks a serialized unit temporarily withdrawn for customer
// evaluation. Every state transition is backed by exactly one stock movement
// (DEMO_ISSUE, DEMO_RETURN or DEMO_SOLD).
type DemoLoan struct {
	ID                 string
	TenantID           string
	DemoID             string // sequential, e.g. DEMO-000045
	UID                string
	ItemID             string
	IssuedToStaffID    string
	CustomerName       string
	CustomerContact    string
	IssueDate          time.Time
	ExpectedReturnDate *time.Time
	WarehouseID        string
	Status             string
	ActualReturnDate   *time.Time
	InspectionNotes    string
	ConvertedToSale    bool
	SalesOrderID       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
