package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// ItemUseCase CRUD de ítems de inventario. El stock no se edita aquí: cambia
// solo a través de movimientos (inventory.RegisterMovementUseCase).
type ItemUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create valida y persiste un ítem nuevo. SKU único por organización.
func (uc *ItemUseCase) Create(ctx context.Context, orgID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.ReorderLevel < 0 || in.UnitCost.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.itemRepo.GetBySKU(ctx, orgID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	status := entity.ItemStatusActive
	if in.Quantity == 0 {
		status = entity.ItemStatusOutOfStock
	}
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		SKU:            in.SKU,
		Barcode:        in.Barcode,
		Name:           in.Name,
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		SupplierID:     in.SupplierID,
		LocationID:     in.LocationID,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		UnitCost:       in.UnitCost,
		SellingPrice:   in.SellingPrice,
		ReorderLevel:   in.ReorderLevel,
		ReorderQty:     in.ReorderQty,
		ExpiryDate:     in.ExpiryDate,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem; valida pertenencia a la organización.
func (uc *ItemUseCase) GetByID(ctx context.Context, orgID, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if item.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// List lista el inventario completo de la organización; con query no vacío
// filtra por SKU o nombre.
func (uc *ItemUseCase) List(ctx context.Context, orgID, query string) (*dto.ItemListResponse, error) {
	var (
		items []*entity.InventoryItem
		err   error
	)
	if query != "" {
		items, err = uc.itemRepo.Search(ctx, orgID, query)
	} else {
		items, err = uc.itemRepo.ListByOrganization(ctx, orgID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Update modifica los datos maestros del ítem (no la cantidad).
func (uc *ItemUseCase) Update(ctx context.Context, orgID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if item.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.ReorderLevel < 0 || in.UnitCost.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Status {
	case "", entity.ItemStatusActive, entity.ItemStatusDiscontinued, entity.ItemStatusOutOfStock:
	default:
		return nil, domain.ErrInvalidInput
	}

	item.Barcode = in.Barcode
	item.Name = in.Name
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.SupplierID = in.SupplierID
	item.LocationID = in.LocationID
	item.Unit = in.Unit
	item.UnitCost = in.UnitCost
	item.SellingPrice = in.SellingPrice
	item.ReorderLevel = in.ReorderLevel
	item.ReorderQty = in.ReorderQty
	item.ExpiryDate = in.ExpiryDate
	if in.Status != "" {
		item.Status = in.Status
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem de la organización.
func (uc *ItemUseCase) Delete(ctx context.Context, orgID, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.OrganizationID != orgID {
		return domain.ErrForbidden
	}
	return uc.itemRepo.Delete(ctx, id)
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	_, low := analytics.ClassifySeverity(it.Quantity, it.ReorderLevel)
	return &dto.ItemResponse{
		ID:           it.ID,
		SKU:          it.SKU,
		Barcode:      it.Barcode,
		Name:         it.Name,
		Description:  it.Description,
		CategoryID:   it.CategoryID,
		SupplierID:   it.SupplierID,
		LocationID:   it.LocationID,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitCost:     it.UnitCost,
		SellingPrice: it.SellingPrice,
		TotalValue:   analytics.ItemValue(analytics.Item{Quantity: it.Quantity, UnitCost: it.UnitCost}).Round(2),
		ReorderLevel: it.ReorderLevel,
		ReorderQty:   it.ReorderQty,
		ExpiryDate:   it.ExpiryDate,
		Status:       it.Status,
		LowStock:     low,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
