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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implements WarehouseRepository over PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository builds the adapter. Pass pool or tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `
	id, tenant_id, warehouse_code, warehouse_name, location, plant_code,
	manager_id, is_active, created_at, updated_at`

// Create inserts a warehouse. Duplicate codes per tenant surface as
// domain.ErrDuplicate.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.TenantID, w.WarehouseCode, w.WarehouseName, w.Location,
		w.PlantCode, w.ManagerID, w.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("warehouse code %s: %w", w.WarehouseCode, domain.ErrDuplicate)
		}
		return fmt.Errorf("create warehouse: %w", err)
	}
	return nil
}

// GetByID returns one warehouse or domain.ErrNotFound.
func (r *WarehouseRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE tenant_id = $1 AND id = $2`
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Update persists the mutable fields.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET warehouse_name = $3, location = $4, manager_id = $5, is_active = $6,
		    updated_at = now()
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		w.TenantID, w.ID, w.WarehouseName, w.Location, w.ManagerID, w.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive returns the tenant's active warehouses ordered by code.
func (r *WarehouseRepo) ListActive(ctx context.Context, tenantID string) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE tenant_id = $1 AND is_active = true
		ORDER BY warehouse_code`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.TenantID, &w.WarehouseCode, &w.WarehouseName, &w.Location,
		&w.PlantCode, &w.ManagerID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
