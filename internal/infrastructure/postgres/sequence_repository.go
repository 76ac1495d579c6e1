package postgres

import (
	"context"
	"fmt"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo allocates document numbers from a per (tenant, prefix) counter
// row. The UPSERT increments and returns in one statement, so concurrent
// callers serialize on the row lock and can never observe the same value.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter. Pass pool or tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next returns the next value of the (tenant, prefix) counter, creating it at
// 1 on first use.
func (r *SequenceRepo) Next(ctx context.Context, tenantID, prefix string) (int64, error) {
	query := `
		INSERT INTO document_sequences (tenant_id, prefix, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, prefix)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(ctx, query, tenantID, prefix).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", prefix, err)
	}
	return n, nil
}
