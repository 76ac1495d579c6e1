package inventory

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, passing
// repositories bound to that transaction. This is what guarantees the
// ledger insert and the projection adjustment land together or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		reservations repository.ReservationRepository,
		demos repository.DemoRepository,
		sequences repository.SequenceRepository,
	) error) error
}

// LowStockChecker is the slice of the alert engine the movement paths need.
// Calls are best-effort: failures are logged by the caller and never abort
// the movement that triggered them.
type LowStockChecker interface {
	CheckLowStock(ctx context.Context, tenantID, itemID, warehouseID string) error
}
