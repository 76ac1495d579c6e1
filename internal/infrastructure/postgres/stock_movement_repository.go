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

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the append-only ledger over PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the adapter. Pass pool or tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `
	id, tenant_id, movement_number, movement_type, item_id, uid,
	from_warehouse_id, from_location_id, to_warehouse_id, to_location_id,
	quantity, reference_type, reference_id, reference_number,
	batch_number, notes, moved_by, movement_date, created_at`

// Create appends one ledger entry. A duplicate movement number surfaces as
// domain.ErrDuplicate so callers can retry the allocation.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TenantID, m.MovementNumber, m.MovementType, m.ItemID, m.UID,
		m.FromWarehouseID, m.FromLocationID, m.ToWarehouseID, m.ToLocationID,
		m.Quantity, m.ReferenceType, m.ReferenceID, m.ReferenceNumber,
		m.BatchNumber, m.Notes, m.MovedBy, m.MovementDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("movement number %s: %w", m.MovementNumber, domain.ErrDuplicate)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID returns one ledger entry or domain.ErrNotFound.
func (r *StockMovementRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE tenant_id = $1 AND id = $2`
	m, err := scanMovement(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List returns ledger entries for the tenant, newest first.
func (r *StockMovementRepo) List(ctx context.Context, tenantID string, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE tenant_id = $1`
	args := []any{tenantID}

	if filter.MovementType != "" {
		args = append(args, filter.MovementType)
		query += fmt.Sprintf(" AND movement_type = $%d", len(args))
	}
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		query += fmt.Sprintf(" AND item_id = $%d", len(args))
	}
	if filter.UID != "" {
		args = append(args, filter.UID)
		query += fmt.Sprintf(" AND uid = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		query += fmt.Sprintf(" AND movement_date >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		query += fmt.Sprintf(" AND movement_date <= $%d", len(args))
	}

	query += " ORDER BY movement_date DESC, created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.TenantID, &m.MovementNumber, &m.MovementType, &m.ItemID, &m.UID,
		&m.FromWarehouseID, &m.FromLocationID, &m.ToWarehouseID, &m.ToLocationID,
		&m.Quantity, &m.ReferenceType, &m.ReferenceID, &m.ReferenceNumber,
		&m.BatchNumber, &m.Notes, &m.MovedBy, &m.MovementDate, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
