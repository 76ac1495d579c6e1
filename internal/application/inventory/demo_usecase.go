package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/qutubkothari/sak-erp-inventory/pkg/logger"
	"github.com/shopspring/decimal"
)

// DemoUseCase runs the demo loan state machine (ISSUED → RETURNED | SOLD) on
// top of the ledger and projection. Each transition writes its loan row and
// its backing stock movement in one transaction.
type DemoUseCase struct {
	txRunner      TxRunner
	recorder      *RecordMovementUseCase
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	demoRepo      repository.DemoRepository
	alerts        LowStockChecker
	log           *logger.Logger
}

// NewDemoUseCase builds the use case.
func NewDemoUseCase(
	txRunner TxRunner,
	recorder *RecordMovementUseCase,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	demoRepo repository.DemoRepository,
	alerts LowStockChecker,
	log *logger.Logger,
) *DemoUseCase {
	return &DemoUseCase{
		txRunner:      txRunner,
		recorder:      recorder,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		demoRepo:      demoRepo,
		alerts:        alerts,
		log:           log,
	}
}

// DemoIssueInput is the input for issuing a demo unit.
type DemoIssueInput struct {
	TenantID           string
	UserID             string
	ItemID             string
	UID                string
	WarehouseID        string
	IssuedToStaffID    string
	CustomerName       string
	CustomerContact    string
	IssueDate          *time.Time
	ExpectedReturnDate *time.Time
}

// DemoReturnInput is the input for returning a demo unit.
type DemoReturnInput struct {
	ReturnDate      *time.Time
	InspectionNotes string
}

// Issue allocates a sequential demo id, inserts the loan as ISSUED and records
// the DEMO_ISSUE movement that takes the unit out of the warehouse — all in
// one transaction.
func (uc *DemoUseCase) Issue(ctx context.Context, input DemoIssueInput) (*entity.DemoLoan, error) {
	if input.ItemID == "" || input.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, input.TenantID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, input.TenantID, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	issueDate := now
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	demo := &entity.DemoLoan{
		ID:                 uuid.New().String(),
		TenantID:           input.TenantID,
		UID:                input.UID,
		ItemID:             input.ItemID,
		IssuedToStaffID:    input.IssuedToStaffID,
		CustomerName:       input.CustomerName,
		CustomerContact:    input.CustomerContact,
		IssueDate:          issueDate,
		ExpectedReturnDate: input.ExpectedReturnDate,
		WarehouseID:        input.WarehouseID,
		Status:             entity.DemoStatusIssued,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var mv *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movements repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		_ repository.ReservationRepository,
		demos repository.DemoRepository,
		sequences repository.SequenceRepository,
	) error {
		n, err := sequences.Next(ctx, input.TenantID, DemoPrefix)
		if err != nil {
			return err
		}
		demo.DemoID = FormatDocumentNumber(DemoPrefix, n)
		if err := demos.Create(ctx, demo); err != nil {
			return err
		}
		mv = uc.demoMovement(demo, entity.MovementTypeDemoIssue, input.UserID, now)
		mv.FromWarehouseID = demo.WarehouseID
		mv.ReferenceType = "DEMO"
		mv.ReferenceID = demo.ID
		mv.Notes = fmt.Sprintf("Demo issued to %s for %s", demo.IssuedToStaffID, demo.CustomerName)
		return uc.recorder.RecordInTx(ctx, movements, levels, sequences, mv, "")
	})
	if err != nil {
		return nil, err
	}
	uc.checkLowStock(ctx, demo)
	return demo, nil
}

// Return takes an ISSUED loan back into the warehouse. Any other status is an
// ErrInvalidState: the state machine has no second return.
func (uc *DemoUseCase) Return(ctx context.Context, tenantID, userID, demoID string, input DemoReturnInput) (*entity.DemoLoan, error) {
	var demo *entity.DemoLoan
	err := uc.txRunner.Run(ctx, func(
		movements repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		_ repository.ReservationRepository,
		demos repository.DemoRepository,
		sequences repository.SequenceRepository,
	) error {
		var err error
		demo, err = demos.GetByDemoID(ctx, tenantID, demoID)
		if err != nil {
			return err
		}
		if demo == nil {
			return domain.ErrNotFound
		}
		if demo.Status != entity.DemoStatusIssued {
			return domain.ErrInvalidState
		}
		now := time.Now()
		returnDate := now
		if input.ReturnDate != nil {
			returnDate = *input.ReturnDate
		}
		demo.Status = entity.DemoStatusReturned
		demo.ActualReturnDate = &returnDate
		demo.InspectionNotes = input.InspectionNotes
		demo.UpdatedAt = now
		if err := demos.Update(ctx, demo); err != nil {
			return err
		}
		mv := uc.demoMovement(demo, entity.MovementTypeDemoReturn, userID, now)
		mv.ToWarehouseID = demo.WarehouseID
		mv.ReferenceType = "DEMO"
		mv.ReferenceID = demo.ID
		mv.Notes = input.InspectionNotes
		return uc.recorder.RecordInTx(ctx, movements, levels, sequences, mv, "")
	})
	if err != nil {
		return nil, err
	}
	return demo, nil
}

// ConvertToSale closes an ISSUED loan as SOLD: the unit leaves inventory
// permanently and the loan is linked to the sales order.
func (uc *DemoUseCase) ConvertToSale(ctx context.Context, tenantID, userID, demoID, salesOrderID string) (*entity.DemoLoan, error) {
	if salesOrderID == "" {
		return nil, domain.ErrInvalidInput
	}
	var demo *entity.DemoLoan
	err := uc.txRunner.Run(ctx, func(
		movements repository.StockMovementRepository,
		levels repository.StockLevelRepository,
		_ repository.ReservationRepository,
		demos repository.DemoRepository,
		sequences repository.SequenceRepository,
	) error {
		var err error
		demo, err = demos.GetByDemoID(ctx, tenantID, demoID)
		if err != nil {
			return err
		}
		if demo == nil {
			return domain.ErrNotFound
		}
		if demo.Status != entity.DemoStatusIssued {
			return domain.ErrInvalidState
		}
		now := time.Now()
		demo.Status = entity.DemoStatusSold
		demo.ConvertedToSale = true
		demo.SalesOrderID = salesOrderID
		demo.UpdatedAt = now
		if err := demos.Update(ctx, demo); err != nil {
			return err
		}
		mv := uc.demoMovement(demo, entity.MovementTypeDemoSold, userID, now)
		mv.FromWarehouseID = demo.WarehouseID
		mv.ReferenceType = "SALES_ORDER"
		mv.ReferenceID = salesOrderID
		mv.Notes = fmt.Sprintf("Demo converted to sale for %s", demo.CustomerName)
		return uc.recorder.RecordInTx(ctx, movements, levels, sequences, mv, "")
	})
	if err != nil {
		return nil, err
	}
	uc.checkLowStock(ctx, demo)
	return demo, nil
}

// List returns demo loans filtered by status and/or issuing staff member.
func (uc *DemoUseCase) List(ctx context.Context, tenantID string, filter repository.DemoFilter) ([]*entity.DemoLoan, error) {
	return uc.demoRepo.List(ctx, tenantID, filter)
}

// demoMovement builds the single-unit movement skeleton backing a demo
// transition. The caller sets direction, reference and notes.
func (uc *DemoUseCase) demoMovement(demo *entity.DemoLoan, movementType, userID string, now time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:              uuid.New().String(),
		TenantID:        demo.TenantID,
		MovementType:    movementType,
		ItemID:          demo.ItemID,
		UID:             demo.UID,
		Quantity:        decimal.NewFromInt(1),
		ReferenceNumber: demo.DemoID,
		MovedBy:         userID,
		MovementDate:    now,
		CreatedAt:       now,
	}
}

func (uc *DemoUseCase) checkLowStock(ctx context.Context, demo *entity.DemoLoan) {
	if uc.alerts == nil {
		return
	}
	if err := uc.alerts.CheckLowStock(ctx, demo.TenantID, demo.ItemID, demo.WarehouseID); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).
			Str("tenant_id", demo.TenantID).
			Str("demo_id", demo.DemoID).
			Msg("low stock check failed after demo transition")
	}
}
