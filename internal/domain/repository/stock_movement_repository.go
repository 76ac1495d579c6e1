package repository

import (
	"context"
	"time"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// MovementFilter narrows ledger listings.
type MovementFilter struct {
	MovementType string
	ItemID       string
	UID          string
	FromDate     *time.Time
	ToDate       *time.Time
	Limit        int
	Offset       int
}

// StockMovementRepository is the port for the append-only movement ledger.
// There is deliberately no update or delete: movements are the audit trail.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.StockMovement, error)
	List(ctx context.Context, tenantID string, filter MovementFilter) ([]*entity.StockMovement, error)
}
