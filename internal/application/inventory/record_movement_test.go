package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTenant     = "tenant-1"
	testUser       = "user-1"
	testItem       = "item-1"
	testWarehouse  = "wh-1"
	testWarehouse2 = "wh-2"
)

func seedCatalog(store *fakeStore) {
	store.addItem(&entity.Item{
		ID: testItem, TenantID: testTenant,
		ItemCode: "BRG-6204", ItemName: "Ball Bearing 6204",
		ReorderLevel: decimal.NewFromInt(10), IsActive: true,
	})
	store.addWarehouse(&entity.Warehouse{
		ID: testWarehouse, TenantID: testTenant,
		WarehouseCode: "WH-MAIN", WarehouseName: "Main Store", IsActive: true,
	})
	store.addWarehouse(&entity.Warehouse{
		ID: testWarehouse2, TenantID: testTenant,
		WarehouseCode: "WH-PLANT", WarehouseName: "Plant Floor", IsActive: true,
	})
}

func newRecorder(store *fakeStore, alerts LowStockChecker) *RecordMovementUseCase {
	return NewRecordMovementUseCase(
		&fakeTxRunner{store}, &fakeItemRepo{store}, &fakeWarehouseRepo{store}, alerts, nil,
	)
}

func receiptInput(qty int64) MovementInput {
	return MovementInput{
		TenantID:      testTenant,
		UserID:        testUser,
		MovementType:  entity.MovementTypeGRNReceipt,
		ItemID:        testItem,
		ToWarehouseID: testWarehouse,
		Quantity:      decimal.NewFromInt(qty),
	}
}

func TestRecordMovement_ReceiptCreatesLedgerAndProjection(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)

	mv, err := uc.RecordMovement(context.Background(), receiptInput(25))
	require.NoError(t, err)

	assert.Equal(t, "RCP-000001", mv.MovementNumber)
	assert.Equal(t, testUser, mv.MovedBy)
	require.Len(t, store.movements, 1)

	level := store.stock(testTenant, testItem, testWarehouse)
	require.NotNil(t, level)
	assert.True(t, level.TotalQuantity.Equal(decimal.NewFromInt(25)))
	assert.True(t, level.ReservedQuantity.IsZero())
}

func TestRecordMovement_SequentialNumbersPerPrefix(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)

	first, err := uc.RecordMovement(context.Background(), receiptInput(5))
	require.NoError(t, err)
	second, err := uc.RecordMovement(context.Background(), receiptInput(5))
	require.NoError(t, err)

	issue := receiptInput(3)
	issue.MovementType = entity.MovementTypeProductionIssue
	issue.ToWarehouseID = ""
	issue.FromWarehouseID = testWarehouse
	third, err := uc.RecordMovement(context.Background(), issue)
	require.NoError(t, err)

	assert.Equal(t, "RCP-000001", first.MovementNumber)
	assert.Equal(t, "RCP-000002", second.MovementNumber)
	// Independent counter per prefix.
	assert.Equal(t, "ISS-000001", third.MovementNumber)
}

func TestRecordMovement_IssueGoesNegativeWithoutGuard(t *testing.T) {
	// The ledger accepts issues beyond on-hand quantity; only reservations
	// guard availability. The projection just reflects reality.
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(3))
	uc := newRecorder(store, nil)

	in := receiptInput(5)
	in.MovementType = entity.MovementTypeProductionIssue
	in.ToWarehouseID = ""
	in.FromWarehouseID = testWarehouse
	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.TotalQuantity.Equal(decimal.NewFromInt(-2)))
}

func TestRecordMovement_TransferAdjustsBothSides(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(20))
	uc := newRecorder(store, nil)

	in := MovementInput{
		TenantID:        testTenant,
		UserID:          testUser,
		MovementType:    entity.MovementTypeTransfer,
		ItemID:          testItem,
		FromWarehouseID: testWarehouse,
		ToWarehouseID:   testWarehouse2,
		Quantity:        decimal.NewFromInt(8),
	}
	mv, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "TRN-000001", mv.MovementNumber)

	from := store.stock(testTenant, testItem, testWarehouse)
	to := store.stock(testTenant, testItem, testWarehouse2)
	assert.True(t, from.TotalQuantity.Equal(decimal.NewFromInt(12)))
	assert.True(t, to.TotalQuantity.Equal(decimal.NewFromInt(8)))
}

func TestRecordMovement_Validation(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*MovementInput)
	}{
		{"unknown movement type", func(in *MovementInput) { in.MovementType = "TELEPORT" }},
		{"missing item", func(in *MovementInput) { in.ItemID = "" }},
		{"zero quantity", func(in *MovementInput) { in.Quantity = decimal.Zero }},
		{"negative quantity", func(in *MovementInput) { in.Quantity = decimal.NewFromInt(-4) }},
		{"no warehouse side", func(in *MovementInput) { in.ToWarehouseID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := receiptInput(5)
			tc.mutate(&in)
			_, err := uc.RecordMovement(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordMovement_UnknownItemOrWarehouse(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)
	ctx := context.Background()

	in := receiptInput(5)
	in.ItemID = "missing-item"
	_, err := uc.RecordMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = receiptInput(5)
	in.ToWarehouseID = "missing-wh"
	_, err = uc.RecordMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nothing may have been written.
	assert.Empty(t, store.movements)
}

type failingChecker struct{ calls int }

func (f *failingChecker) CheckLowStock(context.Context, string, string, string) error {
	f.calls++
	return errors.New("alert store down")
}

func TestRecordMovement_AlertFailureDoesNotFailMovement(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	checker := &failingChecker{}
	uc := newRecorder(store, checker)

	mv, err := uc.RecordMovement(context.Background(), receiptInput(5))
	require.NoError(t, err)
	assert.NotNil(t, mv)
	assert.Equal(t, 1, checker.calls)
	require.Len(t, store.movements, 1)
}

func TestRecordMovement_ConcurrentReceiptsLoseNoUpdates(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), receiptInput(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	level := store.stock(testTenant, testItem, testWarehouse)
	require.NotNil(t, level)
	assert.True(t, level.TotalQuantity.Equal(decimal.NewFromInt(workers)),
		"expected %d, got %s", workers, level.TotalQuantity)

	// Every movement got a distinct number.
	numbers := make(map[string]bool)
	for _, m := range store.movements {
		assert.False(t, numbers[m.MovementNumber], "duplicate number %s", m.MovementNumber)
		numbers[m.MovementNumber] = true
	}
	assert.Len(t, numbers, workers)
}

func TestRecordMovement_ExplicitCategoryTagsNewRow(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)

	in := receiptInput(5)
	in.MovementType = entity.MovementTypeProductionReceipt
	in.Category = entity.CategoryFinishedGood
	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.Equal(t, entity.CategoryFinishedGood, level.Category)
}

func TestRecordMovement_NumbersNeverCollideAcrossMixedTypes(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newRecorder(store, nil)

	types := []string{
		entity.MovementTypeGRNReceipt,
		entity.MovementTypeGRNReceipt,
		entity.MovementTypeAdjustment,
		entity.MovementTypeGRNReceipt,
		entity.MovementTypeAdjustment,
	}
	var got []string
	for _, mt := range types {
		in := receiptInput(1)
		in.MovementType = mt
		mv, err := uc.RecordMovement(context.Background(), in)
		require.NoError(t, err)
		got = append(got, mv.MovementNumber)
	}
	want := []string{"RCP-000001", "RCP-000002", "ADJ-000001", "RCP-000003", "ADJ-000002"}
	assert.Equal(t, want, got, fmt.Sprintf("numbers per prefix must be dense: %v", got))
}
