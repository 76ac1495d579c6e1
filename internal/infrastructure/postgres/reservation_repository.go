package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implements ReservationRepository over PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository builds the adapter. Pass pool or tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

const reservationColumns = `
	id, tenant_id, item_id, warehouse_id, reserved_quantity,
	reference_type, reference_id, reference_number, reserved_by,
	expires_at, released, released_at, created_at`

// Create inserts a reservation row.
func (r *ReservationRepo) Create(ctx context.Context, res *entity.StockReservation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	query := `
		INSERT INTO stock_reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false, NULL, now())`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.TenantID, res.ItemID, res.WarehouseID, res.ReservedQuantity,
		res.ReferenceType, res.ReferenceID, res.ReferenceNumber, res.ReservedBy,
		res.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

// GetByID returns one reservation or domain.ErrNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.StockReservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM stock_reservations WHERE tenant_id = $1 AND id = $2`
	res, err := scanReservation(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// MarkReleased flips released in one guarded statement. The WHERE clause on
// released = false makes a second release a no-op: the RETURNING row is only
// produced for the caller that actually flipped the flag.
func (r *ReservationRepo) MarkReleased(ctx context.Context, tenantID, id string) (*entity.StockReservation, error) {
	query := `
		UPDATE stock_reservations
		SET released = true, released_at = now()
		WHERE tenant_id = $1 AND id = $2 AND released = false
		RETURNING ` + reservationColumns
	res, err := scanReservation(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("release reservation: %w", err)
	}
	return res, nil
}

func scanReservation(row pgx.Row) (*entity.StockReservation, error) {
	var res entity.StockReservation
	err := row.Scan(
		&res.ID, &res.TenantID, &res.ItemID, &res.WarehouseID, &res.ReservedQuantity,
		&res.ReferenceType, &res.ReferenceID, &res.ReferenceNumber, &res.ReservedBy,
		&res.ExpiresAt, &res.Released, &res.ReleasedAt, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
