package repository

import (
	"context"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// DemoFilter narrows demo loan listings.
type DemoFilter struct {
	Status  string
	StaffID string
}

// DemoRepository is the port for demo loans.
type DemoRepository interface {
	Create(ctx context.Context, demo *entity.DemoLoan) error
	GetByDemoID(ctx context.Context, tenantID, demoID string) (*entity.DemoLoan, error)
	Update(ctx context.Context, demo *entity.DemoLoan) error
	List(ctx context.Context, tenantID string, filter DemoFilter) ([]*entity.DemoLoan, error)
}
