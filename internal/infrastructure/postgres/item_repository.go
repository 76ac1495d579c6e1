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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the adapter. Pass pool or tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, tenant_id, item_code, item_name, description, uom, category,
	reorder_level, is_active, created_at, updated_at`

// Create inserts a catalog item. Duplicate item codes per tenant surface as
// domain.ErrDuplicate.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.TenantID, it.ItemCode, it.ItemName, it.Description, it.UOM,
		it.Category, it.ReorderLevel, it.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("item code %s: %w", it.ItemCode, domain.ErrDuplicate)
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID returns one item or domain.ErrNotFound.
func (r *ItemRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE tenant_id = $1 AND id = $2`
	it, err := scanItem(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List returns catalog items, filtered by a case-insensitive search over code
// and name.
func (r *ItemRepo) List(ctx context.Context, tenantID, search string, includeInactive bool, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE tenant_id = $1`
	args := []any{tenantID}

	if !includeInactive {
		query += " AND is_active = true"
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (item_code ILIKE $%d OR item_name ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY item_code"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.TenantID, &it.ItemCode, &it.ItemName, &it.Description, &it.UOM,
		&it.Category, &it.ReorderLevel, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
