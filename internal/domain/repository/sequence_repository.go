package repository

import "context"

// SequenceRepository allocates document numbers. Next must be collision-free
// and strictly increasing per (tenant, prefix) under concurrent callers —
// an atomic counter row, never a count-then-format query.
type SequenceRepository interface {
	Next(ctx context.Context, tenantID, prefix string) (int64, error)
}
