package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with repositories bound to the tx, and
// commits or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movements repository.StockMovementRepository,
	levels repository.StockLevelRepository,
	reservations repository.ReservationRepository,
	demos repository.DemoRepository,
	sequences repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movements := NewStockMovementRepository(tx)
	levels := NewStockLevelRepository(tx)
	reservations := NewReservationRepository(tx)
	demos := NewDemoRepository(tx)
	sequences := NewSequenceRepository(tx)

	if err := fn(movements, levels, reservations, demos, sequences); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
