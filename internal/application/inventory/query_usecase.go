package inventory

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

// StockQueryUseCase serves read-only views of the projection and the ledger.
type StockQueryUseCase struct {
	levelRepo    repository.StockLevelRepository
	movementRepo repository.StockMovementRepository
}

// NewStockQueryUseCase builds the use case.
func NewStockQueryUseCase(levelRepo repository.StockLevelRepository, movementRepo repository.StockMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{levelRepo: levelRepo, movementRepo: movementRepo}
}

// StockLevels lists projection rows filtered by warehouse/item/category and
// the low-stock flag.
func (uc *StockQueryUseCase) StockLevels(ctx context.Context, tenantID string, filter repository.StockLevelFilter) ([]*entity.StockLevel, error) {
	return uc.levelRepo.List(ctx, tenantID, filter)
}

// Movements lists ledger entries filtered by type/item/uid/date range.
func (uc *StockQueryUseCase) Movements(ctx context.Context, tenantID string, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return uc.movementRepo.List(ctx, tenantID, filter)
}
