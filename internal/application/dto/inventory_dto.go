package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest is the body for POST /api/inventory/movements.
type CreateMovementRequest struct {
	MovementType    string          `json:"movement_type"`
	ItemID          string          `json:"item_id"`
	UID             string          `json:"uid,omitempty"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	FromLocationID  string          `json:"from_location_id,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	ToLocationID    string          `json:"to_location_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Category        string          `json:"category,omitempty"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	BatchNumber     string          `json:"batch_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	MovementDate    *time.Time      `json:"movement_date,omitempty"`
}

// MovementResponse mirrors one ledger entry.
type MovementResponse struct {
	ID              string          `json:"id"`
	MovementNumber  string          `json:"movement_number"`
	MovementType    string          `json:"movement_type"`
	ItemID          string          `json:"item_id"`
	UID             string          `json:"uid,omitempty"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	FromLocationID  string          `json:"from_location_id,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	ToLocationID    string          `json:"to_location_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	BatchNumber     string          `json:"batch_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	MovedBy         string          `json:"moved_by"`
	MovementDate    time.Time       `json:"movement_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StockLevelResponse mirrors one projection row.
type StockLevelResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	WarehouseID       string          `json:"warehouse_id"`
	LocationID        string          `json:"location_id,omitempty"`
	Category          string          `json:"category"`
	TotalQuantity     decimal.Decimal `json:"total_quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	LastMovementDate  time.Time       `json:"last_movement_date"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateReservationRequest is the body for POST /api/inventory/reservations.
type CreateReservationRequest struct {
	ItemID          string          `json:"item_id"`
	WarehouseID     string          `json:"warehouse_id"`
	ReservedQty     decimal.Decimal `json:"reserved_quantity"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
}

// ReservationResponse mirrors a reservation row.
type ReservationResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	WarehouseID      string          `json:"warehouse_id"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
	ReferenceType    string          `json:"reference_type,omitempty"`
	ReferenceID      string          `json:"reference_id,omitempty"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
	ReservedBy       string          `json:"reserved_by"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
	Released         bool            `json:"released"`
	ReleasedAt       *time.Time      `json:"released_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ShortageResponse is the structured body of an insufficient-stock rejection,
// detailed enough for calling UIs to render a shortage report.
type ShortageResponse struct {
	Code        string          `json:"code"`
	Message     string          `json:"message"`
	ItemID      string          `json:"item_id"`
	WarehouseID string          `json:"warehouse_id"`
	Requested   decimal.Decimal `json:"requested"`
	Available   decimal.Decimal `json:"available"`
	ShortBy     decimal.Decimal `json:"short_by"`
}

// AlertResponse mirrors an inventory alert.
type AlertResponse struct {
	ID                string          `json:"id"`
	AlertType         string          `json:"alert_type"`
	ItemID            string          `json:"item_id"`
	WarehouseID       string          `json:"warehouse_id,omitempty"`
	JobOrderNumber    string          `json:"job_order_number,omitempty"`
	CurrentQuantity   decimal.Decimal `json:"current_quantity"`
	ThresholdQuantity decimal.Decimal `json:"threshold_quantity"`
	Message           string          `json:"message"`
	Severity          string          `json:"severity"`
	Acknowledged      bool            `json:"acknowledged"`
	AcknowledgedBy    string          `json:"acknowledged_by,omitempty"`
	AcknowledgedAt    *time.Time      `json:"acknowledged_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// IssueDemoRequest is the body for POST /api/inventory/demo/issue.
type IssueDemoRequest struct {
	ItemID             string     `json:"item_id"`
	UID                string     `json:"uid,omitempty"`
	WarehouseID        string     `json:"warehouse_id"`
	IssuedToStaffID    string     `json:"issued_to_staff_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerContact    string     `json:"customer_contact,omitempty"`
	IssueDate          *time.Time `json:"issue_date,omitempty"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
}

// ReturnDemoRequest is the body for PUT /api/inventory/demo/:demoId/return.
type ReturnDemoRequest struct {
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	InspectionNotes string     `json:"inspection_notes,omitempty"`
}

// ConvertDemoRequest is the body for PUT /api/inventory/demo/:demoId/convert-to-sale.
type ConvertDemoRequest struct {
	SalesOrderID string `json:"sales_order_id"`
}

// DemoResponse mirrors a demo loan.
type DemoResponse struct {
	ID                 string     `json:"id"`
	DemoID             string     `json:"demo_id"`
	UID                string     `json:"uid,omitempty"`
	ItemID             string     `json:"item_id"`
	IssuedToStaffID    string     `json:"issued_to_staff_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerContact    string     `json:"customer_contact,omitempty"`
	IssueDate          time.Time  `json:"issue_date"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
	WarehouseID        string     `json:"warehouse_id"`
	Status             string     `json:"status"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	InspectionNotes    string     `json:"inspection_notes,omitempty"`
	ConvertedToSale    bool       `json:"converted_to_sale"`
	SalesOrderID       string     `json:"sales_order_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
