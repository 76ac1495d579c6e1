package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implements AlertRepository over PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository builds the adapter. Pass pool or tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `
	id, tenant_id, alert_type, item_id, warehouse_id, job_order_number,
	current_quantity, threshold_quantity, message, severity,
	acknowledged, acknowledged_by, acknowledged_at, created_at`

// Create inserts an alert row.
func (r *AlertRepo) Create(ctx context.Context, a *entity.InventoryAlert) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `
		INSERT INTO inventory_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false, '', NULL, now())`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.TenantID, a.AlertType, a.ItemID, a.WarehouseID, a.JobOrderNumber,
		a.CurrentQuantity, a.ThresholdQuantity, a.Message, a.Severity,
	)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

// ExistsOpen reports whether an unacknowledged alert exists for the dedup key.
func (r *AlertRepo) ExistsOpen(ctx context.Context, tenantID, alertType, itemID, warehouseID, jobOrderNumber string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM inventory_alerts
			WHERE tenant_id = $1 AND alert_type = $2 AND item_id = $3
			  AND warehouse_id = $4 AND job_order_number = $5
			  AND acknowledged = false
		)`
	var exists bool
	err := r.q.QueryRow(ctx, query, tenantID, alertType, itemID, warehouseID, jobOrderNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check open alert: %w", err)
	}
	return exists, nil
}

// List returns alerts for the tenant, newest first. acknowledged nil lists all.
func (r *AlertRepo) List(ctx context.Context, tenantID string, acknowledged *bool) ([]*entity.InventoryAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM inventory_alerts WHERE tenant_id = $1`
	args := []any{tenantID}
	if acknowledged != nil {
		args = append(args, *acknowledged)
		query += fmt.Sprintf(" AND acknowledged = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Acknowledge marks the alert as handled. Acknowledging an already
// acknowledged alert is a harmless repeat of the same terminal state.
func (r *AlertRepo) Acknowledge(ctx context.Context, tenantID, id, userID string) error {
	query := `
		UPDATE inventory_alerts
		SET acknowledged = true, acknowledged_by = $3, acknowledged_at = now()
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, tenantID, id, userID)
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAlert(row pgx.Row) (*entity.InventoryAlert, error) {
	var a entity.InventoryAlert
	err := row.Scan(
		&a.ID, &a.TenantID, &a.AlertType, &a.ItemID, &a.WarehouseID, &a.JobOrderNumber,
		&a.CurrentQuantity, &a.ThresholdQuantity, &a.Message, &a.Severity,
		&a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
