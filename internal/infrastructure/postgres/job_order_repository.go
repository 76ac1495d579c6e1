package postgres

import (
	"context"
	"fmt"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

var _ repository.JobOrderRepository = (*JobOrderRepo)(nil)

// JobOrderRepo is the read-only adapter over the production module's
// job_orders table, used by the alert engine.
type JobOrderRepo struct {
	q Querier
}

// NewJobOrderRepository builds the adapter. Pass pool or tx (Querier).
func NewJobOrderRepository(q Querier) *JobOrderRepo {
	return &JobOrderRepo{q: q}
}

// ListActiveWithEndDate returns active job orders (DRAFT, SCHEDULED,
// IN_PROGRESS) that carry an end date.
func (r *JobOrderRepo) ListActiveWithEndDate(ctx context.Context, tenantID string) ([]*entity.JobOrder, error) {
	query := `
		SELECT id, tenant_id, job_order_number, item_id, status, end_date
		FROM job_orders
		WHERE tenant_id = $1
		  AND status IN ($2, $3, $4)
		  AND end_date IS NOT NULL
		ORDER BY end_date`
	rows, err := r.q.Query(ctx, query, tenantID,
		entity.JobStatusDraft, entity.JobStatusScheduled, entity.JobStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("list active job orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.JobOrder
	for rows.Next() {
		var j entity.JobOrder
		if err := rows.Scan(&j.ID, &j.TenantID, &j.JobOrderNumber, &j.ItemID, &j.Status, &j.EndDate); err != nil {
			return nil, fmt.Errorf("scan job order: %w", err)
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}
