package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// ItemRepository is the port for the item catalog. The inventory core treats
// items as read-only; the thin CRUD surface is for the catalog collaborator.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Item, error)
	List(ctx context.Context, tenantID, search string, includeInactive bool, limit, offset int) ([]*entity.Item, error)
}
