package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/qutubkothari/sak-erp-inventory/pkg/logger"
	"github.com/qutubkothari/sak-erp-inventory/pkg/metrics"
	"github.com/shopspring/decimal"
)

// RecordMovementUseCase appends movements to the stock ledger and keeps the
// stock projection in lock-step, inside one transaction per movement.
type RecordMovementUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	alerts        LowStockChecker
	log           *logger.Logger
}

// NewRecordMovementUseCase builds the use case. alerts may be nil (no
// low-stock checks are triggered then, e.g. in collaborator-driven tests).
func NewRecordMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	alerts LowStockChecker,
	log *logger.Logger,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		alerts:        alerts,
		log:           log,
	}
}

// MovementInput is the input for recording one stock movement. Quantity is a
// positive magnitude; direction comes from the warehouse sides. Category tags
// fresh projection rows on the receiving side (RAW_MATERIAL when empty).
type MovementInput struct {
	TenantID        string
	UserID          string
	MovementType    string
	ItemID          string
	UID             string
	FromWarehouseID string
	FromLocationID  string
	ToWarehouseID   string
	ToLocationID    string
	Quantity        decimal.Decimal
	Category        string
	ReferenceType   string
	ReferenceID     string
	ReferenceNumber string
	BatchNumber     string
	Notes           string
	MovementDate    *time.Time
}

// RecordMovement validates the input, then in one transaction allocates the
// movement number, inserts the ledger entry and adjusts the projection for
// both touched sides. The low-stock check runs after commit and is
// best-effort: its failure is logged, never returned.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if !knownMovementType(input.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	if input.ItemID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.FromWarehouseID == "" && input.ToWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(ctx, input.TenantID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	for _, whID := range []string{input.FromWarehouseID, input.ToWarehouseID} {
		if whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(ctx, input.TenantID, whID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	movementDate := now
	if input.MovementDate != nil {
		movementDate = *input.MovementDate
	}
	mv := &entity.StockMovement{
		ID:              uuid.New().String(),
		TenantID:        input.TenantID,
		MovementType:    input.MovementType,
		ItemID:          input.ItemID,
		UID:             input.UID,
		FromWarehouseID: input.FromWarehouseID,
		FromLocationID:  input.FromLocationID,
		ToWarehouseID:   input.ToWarehouseID,
		ToLocationID:    input.ToLocationID,
		Quantity:        input.Quantity,
		ReferenceType:   input.ReferenceType,
		ReferenceID:     input.ReferenceID,
		ReferenceNumber: input.ReferenceNumber,
		BatchNumber:     input.BatchNumber,
		Notes:           input.Notes,
		MovedBy:         input.UserID,
		MovementDate:    movementDate,
		CreatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		movements repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		_ repository.ReservationRepository,
		_ repository.DemoRepository,
		sequences repository.SequenceRepository,
	) error {
		return uc.RecordInTx(ctx, movements, levels, sequences, mv, input.Category)
	})
	if err != nil {
		return nil, err
	}
	metrics.MovementRecorded(mv.MovementType)

	uc.checkLowStock(ctx, mv)
	return mv, nil
}

// RecordInTx appends the movement and adjusts the projection using the
// caller's transaction-bound repositories. Other use cases (demo loans, sales
// dispatch) reuse this so their own row writes commit atomically with the
// ledger. Allocates the movement number when it is not set yet.
func (uc *RecordMovementUseCase) RecordInTx(
	ctx context.Context,
	movements repository.StockMovementRepository,
	levels repository.StockLevelRepository,
	sequences repository.SequenceRepository,
	mv *entity.StockMovement,
	category string,
) error {
	if mv.MovementNumber == "" {
		prefix := MovementPrefix(mv.MovementType)
		n, err := sequences.Next(ctx, mv.TenantID, prefix)
		if err != nil {
			return err
		}
		mv.MovementNumber = FormatDocumentNumber(prefix, n)
	}
	if err := movements.Create(ctx, mv); err != nil {
		return err
	}
	if mv.FromWarehouseID != "" {
		err := levels.ApplyDelta(ctx, mv.TenantID, mv.ItemID, mv.FromWarehouseID, mv.FromLocationID, mv.Quantity.Neg(), category)
		if err != nil {
			return err
		}
	}
	if mv.ToWarehouseID != "" {
		cat := category
		if cat == "" {
			cat = entity.CategoryRawMaterial
		}
		err := levels.ApplyDelta(ctx, mv.TenantID, mv.ItemID, mv.ToWarehouseID, mv.ToLocationID, mv.Quantity, cat)
		if err != nil {
			return err
		}
	}
	return nil
}

// checkLowStock runs the post-commit low-stock check for every warehouse the
// movement touched. Best-effort by design: errors are logged and swallowed.
func (uc *RecordMovementUseCase) checkLowStock(ctx context.Context, mv *entity.StockMovement) {
	if uc.alerts == nil {
		return
	}
	for _, whID := range []string{mv.FromWarehouseID, mv.ToWarehouseID} {
		if whID == "" {
			continue
		}
		if err := uc.alerts.CheckLowStock(ctx, mv.TenantID, mv.ItemID, whID); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).
				Str("tenant_id", mv.TenantID).
				Str("item_id", mv.ItemID).
				Str("warehouse_id", whID).
				Msg("low stock check failed after movement")
		}
	}
}
