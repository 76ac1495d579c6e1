package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// JobOrderRepository is a read-only port into the production module, used by
// the alert engine to classify active job orders.
type JobOrderRepository interface {
	// ListActiveWithEndDate returns job orders in DRAFT, SCHEDULED or
	// IN_PROGRESS that carry an end date.
	ListActiveWithEndDate(ctx context.Context, tenantID string) ([]*entity.JobOrder, error)
}
