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
	"github.com/shopspring/decimal"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implements StockLevelRepository over PostgreSQL (usable with
// pool or tx). All mutations are single atomic statements: concurrency safety
// lives in the SQL, not in Go.
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository builds the adapter. Pass pool or tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

const stockLevelColumns = `
	id, tenant_id, item_id, warehouse_id, location_id, category,
	total_quantity, reserved_quantity, last_movement_date, updated_at`

// Get returns the projection row for one key, or domain.ErrNotFound.
func (r *StockLevelRepo) Get(ctx context.Context, tenantID, itemID, warehouseID, locationID string) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM inventory_stock
		WHERE tenant_id = $1 AND item_id = $2 AND warehouse_id = $3 AND location_id = $4`
	row := r.q.QueryRow(ctx, query, tenantID, itemID, warehouseID, locationID)
	s, err := scanStockLevel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return s, nil
}

// List returns projection rows for the tenant, newest movement first.
func (r *StockLevelRepo) List(ctx context.Context, tenantID string, filter repository.StockLevelFilter) ([]*entity.StockLevel, error) {
	query := `
		SELECT s.id, s.tenant_id, s.item_id, s.warehouse_id, s.location_id, s.category,
		       s.total_quantity, s.reserved_quantity, s.last_movement_date, s.updated_at
		FROM inventory_stock s
		JOIN items i ON i.id = s.item_id AND i.tenant_id = s.tenant_id
		WHERE s.tenant_id = $1`
	args := []any{tenantID}

	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		query += fmt.Sprintf(" AND s.warehouse_id = $%d", len(args))
	}
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		query += fmt.Sprintf(" AND s.item_id = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND s.category = $%d", len(args))
	}
	if filter.LowStock {
		query += " AND i.reorder_level > 0 AND s.total_quantity - s.reserved_quantity <= i.reorder_level"
	}

	query += " ORDER BY s.last_movement_date DESC"
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
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLevel
	for rows.Next() {
		s, err := scanStockLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ApplyDelta adds delta to total_quantity for the key, inserting the row when
// it does not exist yet. The increment happens inside the UPSERT so two
// concurrent writers can never lose an update.
func (r *StockLevelRepo) ApplyDelta(ctx context.Context, tenantID, itemID, warehouseID, locationID string, delta decimal.Decimal, category string) error {
	query := `
		INSERT INTO inventory_stock
			(id, tenant_id, item_id, warehouse_id, location_id, category,
			 total_quantity, reserved_quantity, last_movement_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, now(), now())
		ON CONFLICT (tenant_id, item_id, warehouse_id, location_id)
		DO UPDATE SET
			total_quantity = inventory_stock.total_quantity + EXCLUDED.total_quantity,
			last_movement_date = now(),
			updated_at = now()`
	_, err := r.q.Exec(ctx, query, uuid.NewString(), tenantID, itemID, warehouseID, locationID, category, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	return nil
}

// ReserveIfAvailable increments reserved_quantity only when enough available
// quantity exists, in one conditional UPDATE. Zero rows affected means the
// hold was refused.
func (r *StockLevelRepo) ReserveIfAvailable(ctx context.Context, tenantID, itemID, warehouseID string, qty decimal.Decimal) (bool, error) {
	query := `
		UPDATE inventory_stock
		SET reserved_quantity = reserved_quantity + $4, updated_at = now()
		WHERE tenant_id = $1 AND item_id = $2 AND warehouse_id = $3 AND location_id = ''
		  AND total_quantity - reserved_quantity >= $4`
	tag, err := r.q.Exec(ctx, query, tenantID, itemID, warehouseID, qty)
	if err != nil {
		return false, fmt.Errorf("reserve stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// AdjustReserved adds delta to reserved_quantity, clamped at zero so a stray
// release can never drive the projection negative.
func (r *StockLevelRepo) AdjustReserved(ctx context.Context, tenantID, itemID, warehouseID string, delta decimal.Decimal) error {
	query := `
		UPDATE inventory_stock
		SET reserved_quantity = GREATEST(reserved_quantity + $4, 0), updated_at = now()
		WHERE tenant_id = $1 AND item_id = $2 AND warehouse_id = $3 AND location_id = ''`
	_, err := r.q.Exec(ctx, query, tenantID, itemID, warehouseID, delta)
	if err != nil {
		return fmt.Errorf("adjust reserved: %w", err)
	}
	return nil
}

// Snapshot returns the joined stock/item view for one key, aggregated across
// locations of the warehouse. Nil when no stock row exists.
func (r *StockLevelRepo) Snapshot(ctx context.Context, tenantID, itemID, warehouseID string) (*repository.StockSnapshot, error) {
	query := `
		SELECT s.item_id, i.item_code, i.item_name, s.warehouse_id,
		       SUM(s.total_quantity - s.reserved_quantity), i.reorder_level
		FROM inventory_stock s
		JOIN items i ON i.id = s.item_id AND i.tenant_id = s.tenant_id
		WHERE s.tenant_id = $1 AND s.item_id = $2 AND s.warehouse_id = $3
		GROUP BY s.item_id, i.item_code, i.item_name, s.warehouse_id, i.reorder_level`
	var snap repository.StockSnapshot
	err := r.q.QueryRow(ctx, query, tenantID, itemID, warehouseID).Scan(
		&snap.ItemID, &snap.ItemCode, &snap.ItemName, &snap.WarehouseID,
		&snap.Available, &snap.ReorderLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}
	return &snap, nil
}

// ListBelowReorder returns every snapshot of the tenant at or below its
// item's positive reorder level.
func (r *StockLevelRepo) ListBelowReorder(ctx context.Context, tenantID string) ([]repository.StockSnapshot, error) {
	query := `
		SELECT s.item_id, i.item_code, i.item_name, s.warehouse_id,
		       SUM(s.total_quantity - s.reserved_quantity), i.reorder_level
		FROM inventory_stock s
		JOIN items i ON i.id = s.item_id AND i.tenant_id = s.tenant_id
		WHERE s.tenant_id = $1 AND i.reorder_level > 0
		GROUP BY s.item_id, i.item_code, i.item_name, s.warehouse_id, i.reorder_level
		HAVING SUM(s.total_quantity - s.reserved_quantity) <= i.reorder_level`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list below reorder: %w", err)
	}
	defer rows.Close()

	var out []repository.StockSnapshot
	for rows.Next() {
		var snap repository.StockSnapshot
		if err := rows.Scan(&snap.ItemID, &snap.ItemCode, &snap.ItemName, &snap.WarehouseID,
			&snap.Available, &snap.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func scanStockLevel(row pgx.Row) (*entity.StockLevel, error) {
	var s entity.StockLevel
	err := row.Scan(
		&s.ID, &s.TenantID, &s.ItemID, &s.WarehouseID, &s.LocationID, &s.Category,
		&s.TotalQuantity, &s.ReservedQuantity, &s.LastMovementDate, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
