package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// AlertRepository is the port for inventory alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.InventoryAlert) error

	// ExistsOpen reports whether an unacknowledged alert already exists for
	// the dedup key. warehouseID applies to stock alerts, jobOrderNumber to
	// job alerts; pass "" for the side that does not apply.
	ExistsOpen(ctx context.Context, tenantID, alertType, itemID, warehouseID, jobOrderNumber string) (bool, error)

	List(ctx context.Context, tenantID string, acknowledged *bool) ([]*entity.InventoryAlert, error)

	// Acknowledge is the terminal transition. Returns domain.ErrNotFound when
	// the alert does not exist for the tenant.
	Acknowledge(ctx context.Context, tenantID, id, userID string) error
}
