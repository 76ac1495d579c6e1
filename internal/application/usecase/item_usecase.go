package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase is the thin catalog collaborator. The inventory core only reads
// reorder levels and categories from here.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create creates a catalog item.
func (uc *ItemUseCase) Create(ctx context.Context, tenantID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.ItemCode == "" || in.ItemName == "" {
		return nil, domain.ErrInvalidInput
	}
	reorder := decimal.Zero
	if in.ReorderLevel != nil {
		if in.ReorderLevel.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		reorder = *in.ReorderLevel
	}
	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		ItemCode:     in.ItemCode,
		ItemName:     in.ItemName,
		Description:  in.Description,
		UOM:          in.UOM,
		Category:     in.Category,
		ReorderLevel: reorder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID fetches an item for the tenant.
func (uc *ItemUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List searches the catalog.
func (uc *ItemUseCase) List(ctx context.Context, tenantID, search string, includeInactive bool, limit, offset int) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, search, includeInactive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           i.ID,
		TenantID:     i.TenantID,
		ItemCode:     i.ItemCode,
		ItemName:     i.ItemName,
		Description:  i.Description,
		UOM:          i.UOM,
		Category:     i.Category,
		ReorderLevel: i.ReorderLevel,
		IsActive:     i.IsActive,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
