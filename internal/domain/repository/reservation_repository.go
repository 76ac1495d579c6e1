package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// ReservationRepository is the port for stock reservations. Release is a
// logical delete: the row stays, the flag flips.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.StockReservation) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.StockReservation, error)

	// MarkReleased flips released=false to true and stamps released_at, in one
	// guarded statement. Returns the reservation as it was before release, or
	// nil when the row was already released (the guard did not match).
	MarkReleased(ctx context.Context, tenantID, id string) (*entity.StockReservation, error)
}
