package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationUC(store *fakeStore) *ReservationUseCase {
	return NewReservationUseCase(&fakeTxRunner{store}, &fakeLevelRepo{store})
}

func reserveInput(qty int64) ReserveInput {
	return ReserveInput{
		TenantID:    testTenant,
		UserID:      testUser,
		ItemID:      testItem,
		WarehouseID: testWarehouse,
		Quantity:    decimal.NewFromInt(qty),
	}
}

func TestReserve_HoldsAvailableStock(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)

	res, err := uc.Reserve(context.Background(), reserveInput(4))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Released)
	assert.True(t, res.ReservedQuantity.Equal(decimal.NewFromInt(4)))

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.TotalQuantity.Equal(decimal.NewFromInt(10)), "total is untouched by a hold")
	assert.True(t, level.ReservedQuantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, level.AvailableQuantity().Equal(decimal.NewFromInt(6)))
}

func TestReserve_RejectsBeyondAvailability(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)
	ctx := context.Background()

	_, err := uc.Reserve(ctx, reserveInput(7))
	require.NoError(t, err)

	// 3 available left; asking for 5 must fail with the shortage detail.
	_, err = uc.Reserve(ctx, reserveInput(5))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, testItem, shortage.ItemID)
	assert.Equal(t, testWarehouse, shortage.WarehouseID)
	assert.True(t, shortage.Requested.Equal(decimal.NewFromInt(5)))
	assert.True(t, shortage.Available.Equal(decimal.NewFromInt(3)))
	assert.True(t, shortage.ShortBy().Equal(decimal.NewFromInt(2)))

	// The failed attempt left no reservation row and no projection change.
	assert.Len(t, store.reservations, 1)
	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.ReservedQuantity.Equal(decimal.NewFromInt(7)))
}

func TestReserve_MissingStockRowIsInsufficient(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	uc := newReservationUC(store)

	_, err := uc.Reserve(context.Background(), reserveInput(1))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.True(t, shortage.Available.IsZero())
}

func TestReserve_Validation(t *testing.T) {
	store := newFakeStore()
	uc := newReservationUC(store)
	ctx := context.Background()

	in := reserveInput(5)
	in.ItemID = ""
	_, err := uc.Reserve(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = reserveInput(0)
	_, err = uc.Reserve(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReserve_ConcurrentHoldsNeverOverReserve(t *testing.T) {
	// 10 available, two goroutines each asking for 6: exactly one wins.
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Reserve(context.Background(), reserveInput(6))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, succeeded)

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.ReservedQuantity.Equal(decimal.NewFromInt(6)))
}

func TestReserve_ManyConcurrentSingleUnitHolds(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)

	const attempts = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Reserve(context.Background(), reserveInput(1)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded, "holds must stop exactly at availability")
	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.ReservedQuantity.Equal(decimal.NewFromInt(10)))
}

func TestRelease_RestoresAvailability(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)
	ctx := context.Background()

	res, err := uc.Reserve(ctx, reserveInput(4))
	require.NoError(t, err)

	require.NoError(t, uc.Release(ctx, testTenant, res.ID))

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.ReservedQuantity.IsZero())
	assert.True(t, level.AvailableQuantity().Equal(decimal.NewFromInt(10)))

	stored := store.reservations[res.ID]
	assert.True(t, stored.Released)
	assert.NotNil(t, stored.ReleasedAt)
}

func TestRelease_DoubleReleaseIsConflictNotDoubleCredit(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)
	ctx := context.Background()

	res, err := uc.Reserve(ctx, reserveInput(4))
	require.NoError(t, err)

	require.NoError(t, uc.Release(ctx, testTenant, res.ID))
	err = uc.Release(ctx, testTenant, res.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Reserved must not have been decremented twice.
	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.ReservedQuantity.IsZero())
}

func TestRelease_UnknownReservation(t *testing.T) {
	store := newFakeStore()
	uc := newReservationUC(store)

	err := uc.Release(context.Background(), testTenant, "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReserveThenMoveThenRelease_RoundTrip(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	store.seedStock(testTenant, testItem, testWarehouse, decimal.NewFromInt(10))
	uc := newReservationUC(store)
	recorder := newRecorder(store, nil)
	ctx := context.Background()

	res, err := uc.Reserve(ctx, reserveInput(6))
	require.NoError(t, err)

	// A receipt lands while the hold is active.
	_, err = recorder.RecordMovement(ctx, receiptInput(5))
	require.NoError(t, err)

	level := store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.AvailableQuantity().Equal(decimal.NewFromInt(9)))

	require.NoError(t, uc.Release(ctx, testTenant, res.ID))
	level = store.stock(testTenant, testItem, testWarehouse)
	assert.True(t, level.AvailableQuantity().Equal(decimal.NewFromInt(15)))
}
