package entity

import "time"

// Job order statuses considered "active" for alerting purposes are DRAFT,
// SCHEDULED and IN_PROGRESS.
const (
	JobStatusDraft      = "DRAFT"
	JobStatusScheduled  = "SCHEDULED"
	JobStatusInProgress = "IN_PROGRESS"
	JobStatusCompleted  = "COMPLETED"
	JobStatusCancelled  = "CANCELLED"
)

// JobOrder is a read-only view of a production job order, owned by the
// production module. The alert engine classifies active orders with an
// end date as overdue or due soon.
type JobOrder struct {
	ID             string
	TenantID       string
	JobOrderNumber string
	ItemID         string
	Status         string
	EndDate        *time.Time
}
