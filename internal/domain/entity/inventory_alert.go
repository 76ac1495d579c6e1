package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert types.
const (
	AlertTypeLowStock   = "LOW_STOCK"
	AlertTypeJobOverdue = "JOB_OVERDUE"
	AlertTypeJobDueSoon = "JOB_DUE_SOON"
)

// Alert severities.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
)

// InventoryAlert is an advisory record derived from the stock projection or
// job-order state. At most one unacknowledged alert may exist per
// (tenant, alert_type, item, warehouse) — or per (tenant, alert_type, item,
// job_order_number) for job alerts. Acknowledgment is terminal; a fresh breach
// afterwards creates a new row.
type InventoryAlert struct {
	ID                string
	TenantID          string
	AlertType         string
	ItemID            string
	WarehouseID       string // empty for job alerts
	JobOrderNumber    string // empty for stock alerts
	CurrentQuantity   decimal.Decimal
	ThresholdQuantity decimal.Decimal
	Message           string
	Severity          string
	Acknowledged      bool
	AcknowledgedBy    string
	AcknowledgedAt    *time.Time
	CreatedAt         time.Time
}
