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

var _ repository.DemoRepository = (*DemoRepo)(nil)

// DemoRepo implements DemoRepository over PostgreSQL.
type DemoRepo struct {
	q Querier
}

// NewDemoRepository builds the adapter. Pass pool or tx (Querier).
func NewDemoRepository(q Querier) *DemoRepo {
	return &DemoRepo{q: q}
}

const demoColumns = `
	id, tenant_id, demo_id, uid, item_id, issued_to_staff_id,
	customer_name, customer_contact, issue_date, expected_return_date,
	warehouse_id, status, actual_return_date, inspection_notes,
	converted_to_sale, sales_order_id, created_at, updated_at`

// Create inserts a demo loan.
func (r *DemoRepo) Create(ctx context.Context, d *entity.DemoLoan) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	query := `
		INSERT INTO demo_inventory (` + demoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.TenantID, d.DemoID, d.UID, d.ItemID, d.IssuedToStaffID,
		d.CustomerName, d.CustomerContact, d.IssueDate, d.ExpectedReturnDate,
		d.WarehouseID, d.Status, d.ActualReturnDate, d.InspectionNotes,
		d.ConvertedToSale, d.SalesOrderID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("demo id %s: %w", d.DemoID, domain.ErrDuplicate)
		}
		return fmt.Errorf("create demo: %w", err)
	}
	return nil
}

// GetByDemoID returns one demo loan by its sequential demo id.
func (r *DemoRepo) GetByDemoID(ctx context.Context, tenantID, demoID string) (*entity.DemoLoan, error) {
	query := `
		SELECT ` + demoColumns + `
		FROM demo_inventory WHERE tenant_id = $1 AND demo_id = $2`
	d, err := scanDemo(r.q.QueryRow(ctx, query, tenantID, demoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get demo: %w", err)
	}
	return d, nil
}

// Update persists a state transition.
func (r *DemoRepo) Update(ctx context.Context, d *entity.DemoLoan) error {
	query := `
		UPDATE demo_inventory
		SET status = $3, actual_return_date = $4, inspection_notes = $5,
		    converted_to_sale = $6, sales_order_id = $7, updated_at = now()
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		d.TenantID, d.ID, d.Status, d.ActualReturnDate, d.InspectionNotes,
		d.ConvertedToSale, d.SalesOrderID,
	)
	if err != nil {
		return fmt.Errorf("update demo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns demo loans for the tenant, newest first.
func (r *DemoRepo) List(ctx context.Context, tenantID string, filter repository.DemoFilter) ([]*entity.DemoLoan, error) {
	query := `
		SELECT ` + demoColumns + `
		FROM demo_inventory WHERE tenant_id = $1`
	args := []any{tenantID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(" AND issued_to_staff_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list demos: %w", err)
	}
	defer rows.Close()

	var out []*entity.DemoLoan
	for rows.Next() {
		d, err := scanDemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan demo: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDemo(row pgx.Row) (*entity.DemoLoan, error) {
	var d entity.DemoLoan
	err := row.Scan(
		&d.ID, &d.TenantID, &d.DemoID, &d.UID, &d.ItemID, &d.IssuedToStaffID,
		&d.CustomerName, &d.CustomerContact, &d.IssueDate, &d.ExpectedReturnDate,
		&d.WarehouseID, &d.Status, &d.ActualReturnDate, &d.InspectionNotes,
		&d.ConvertedToSale, &d.SalesOrderID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
