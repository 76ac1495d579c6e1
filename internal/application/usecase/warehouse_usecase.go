package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

// WarehouseUseCase is the thin CRUD collaborator around warehouses.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create creates a warehouse.
func (uc *WarehouseUseCase) Create(ctx context.Context, tenantID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.WarehouseCode == "" || in.WarehouseName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		WarehouseCode: in.WarehouseCode,
		WarehouseName: in.WarehouseName,
		Location:      in.Location,
		PlantCode:     in.PlantCode,
		ManagerID:     in.ManagerID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID fetches a warehouse for the tenant.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update patches the mutable warehouse fields.
func (uc *WarehouseUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.WarehouseName != nil {
		warehouse.WarehouseName = *in.WarehouseName
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	if in.ManagerID != nil {
		warehouse.ManagerID = *in.ManagerID
	}
	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List returns the tenant's active warehouses.
func (uc *WarehouseUseCase) List(ctx context.Context, tenantID string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:            w.ID,
		TenantID:      w.TenantID,
		WarehouseCode: w.WarehouseCode,
		WarehouseName: w.WarehouseName,
		Location:      w.Location,
		PlantCode:     w.PlantCode,
		ManagerID:     w.ManagerID,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
