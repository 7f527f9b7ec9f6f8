package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del historial de movimientos (la página de
// movimientos y el historial por ítem). Los nombres de ítem se resuelven en
// memoria para no hacer un join por fila.
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
	itemRepo     repository.InventoryItemRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movementRepo repository.StockMovementRepository, itemRepo repository.InventoryItemRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo, itemRepo: itemRepo}
}

// List devuelve los movimientos de la organización, más recientes primero.
func (uc *MovementQueryUseCase) List(ctx context.Context, orgID string, limit, offset int) (*dto.MovementListResponse, error) {
	moves, err := uc.movementRepo.ListByOrganization(ctx, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	names, err := uc.itemNames(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, toMovementResponse(m, names[m.ItemID]))
	}
	return &dto.MovementListResponse{Movements: out, Total: len(out)}, nil
}

// ListByItem devuelve el historial de un ítem; valida pertenencia a la organización.
func (uc *MovementQueryUseCase) ListByItem(ctx context.Context, orgID, itemID string, limit int) ([]dto.MovementResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	moves, err := uc.movementRepo.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos del ítem: %w", err)
	}
	out := make([]dto.MovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, toMovementResponse(m, item.Name))
	}
	return out, nil
}

func (uc *MovementQueryUseCase) itemNames(ctx context.Context, orgID string) (map[string]string, error) {
	items, err := uc.itemRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("resolver nombres de ítems: %w", err)
	}
	names := make(map[string]string, len(items))
	for _, it := range items {
		names[it.ID] = it.Name
	}
	return names, nil
}

func toMovementResponse(m *entity.StockMovement, itemName string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ItemID:         m.ItemID,
		ItemName:       itemName,
		Type:           m.Type,
		Quantity:       m.Quantity,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Reference:      m.Reference,
		UnitCost:       m.UnitCost,
		Notes:          m.Notes,
		PerformedBy:    m.PerformedBy,
		CreatedAt:      m.CreatedAt,
	}
}
