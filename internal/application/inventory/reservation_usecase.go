package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/qutubkothari/sak-erp-inventory/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ReservationUseCase places and releases soft holds against available stock.
type ReservationUseCase struct {
	txRunner  TxRunner
	levelRepo repository.StockLevelRepository
}

// NewReservationUseCase builds the use case. levelRepo is pool-bound and only
// used to read shortage detail for error responses.
func NewReservationUseCase(txRunner TxRunner, levelRepo repository.StockLevelRepository) *ReservationUseCase {
	return &ReservationUseCase{txRunner: txRunner, levelRepo: levelRepo}
}

// ReserveInput is the input for placing a reservation.
type ReserveInput struct {
	TenantID        string
	UserID          string
	ItemID          string
	WarehouseID     string
	Quantity        decimal.Decimal
	ReferenceType   string
	ReferenceID     string
	ReferenceNumber string
	ExpiresAt       *time.Time
}

// Reserve holds quantity against available stock. The availability check and
// the reserved_quantity increment are one conditional statement; the
// reservation row is inserted in the same transaction only when it succeeds.
// Two concurrent reservations can therefore never jointly over-reserve.
func (uc *ReservationUseCase) Reserve(ctx context.Context, input ReserveInput) (*entity.StockReservation, error) {
	if input.ItemID == "" || input.WarehouseID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	res := &entity.StockReservation{
		ID:               uuid.New().String(),
		TenantID:         input.TenantID,
		ItemID:           input.ItemID,
		WarehouseID:      input.WarehouseID,
		ReservedQuantity: input.Quantity,
		ReferenceType:    input.ReferenceType,
		ReferenceID:      input.ReferenceID,
		ReferenceNumber:  input.ReferenceNumber,
		ReservedBy:       input.UserID,
		ExpiresAt:        input.ExpiresAt,
		CreatedAt:        time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		reservations repository.ReservationRepository,
		_ repository.DemoRepository,
		_ repository.SequenceRepository,
	) error {
		ok, err := levels.ReserveIfAvailable(ctx, input.TenantID, input.ItemID, input.WarehouseID, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return uc.insufficientStock(ctx, input)
		}
		return reservations.Create(ctx, res)
	})
	if err != nil {
		metrics.ReservationResult("rejected")
		return nil, err
	}
	metrics.ReservationResult("reserved")
	return res, nil
}

// Release flips the reservation's released flag and returns the hold to
// available stock, in one transaction. Releasing an already-released
// reservation is an explicit ErrConflict, never a second decrement.
func (uc *ReservationUseCase) Release(ctx context.Context, tenantID, reservationID string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		reservations repository.ReservationRepository,
		_ repository.DemoRepository,
		_ repository.SequenceRepository,
	) error {
		released, err := reservations.MarkReleased(ctx, tenantID, reservationID)
		if err != nil {
			return err
		}
		if released == nil {
			existing, err := reservations.GetByID(ctx, tenantID, reservationID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
			return domain.ErrConflict
		}
		return levels.AdjustReserved(ctx, tenantID, released.ItemID, released.WarehouseID, released.ReservedQuantity.Neg())
	})
}

// insufficientStock reads the current availability so the error carries the
// shortage detail the calling UI renders.
func (uc *ReservationUseCase) insufficientStock(ctx context.Context, input ReserveInput) error {
	available := decimal.Zero
	snap, err := uc.levelRepo.Snapshot(ctx, input.TenantID, input.ItemID, input.WarehouseID)
	if err == nil && snap != nil {
		available = snap.Available
	}
	return &domain.InsufficientStockError{
		ItemID:      input.ItemID,
		WarehouseID: input.WarehouseID,
		Requested:   input.Quantity,
		Available:   available,
	}
}
