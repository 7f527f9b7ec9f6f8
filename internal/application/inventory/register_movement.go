// Package inventory contiene el caso de uso transaccional de movimientos de
// stock: la única vía por la que cambia la cantidad de un ítem.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stocklens-api/internal/domain/inventory"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional (inbound, outbound, transfer, adjustment, stocktake) con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Semántica de cantidad por tipo:
//   - inbound suma, outbound resta (stock insuficiente aborta la tx);
//   - adjustment y stocktake fijan la cantidad absoluta, tal como lo hace el
//     formulario de movimientos ("Adjustment (Set Quantity)");
//   - transfer reubica el ítem sin alterar la cantidad.
//
// Tras aplicar el movimiento se reevalúa la alerta de stock bajo con el motor
// de analítica: upsert idempotente por (item, low_stock) o resolución si el
// ítem volvió sobre su punto de reorden.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Register valida y aplica un movimiento para la organización indicada.
// performedBy es el perfil autenticado que lo ejecuta.
func (uc *RegisterMovementUseCase) Register(
	ctx context.Context,
	orgID, performedBy string,
	in dto.RegisterMovementRequest,
) (*dto.MovementResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeInbound, entity.MovementTypeOutbound:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjustment, entity.MovementTypeStocktake:
		// valor absoluto a fijar; cero es válido (conteo en cero)
		if in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeTransfer:
		if in.Quantity <= 0 || in.FromLocationID == "" || in.ToLocationID == "" ||
			in.FromLocationID == in.ToLocationID {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Validar pertenencia antes de abrir la tx
	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		ItemID:         in.ItemID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Reference:      in.Reference,
		Notes:          in.Notes,
		PerformedBy:    performedBy,
		CreatedAt:      now,
	}
	if in.UnitCost != nil {
		movement.UnitCost = *in.UnitCost
	} else {
		movement.UnitCost = item.UnitCost
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.AlertRepository,
	) error {
		// Bloquea la fila del ítem para evitar carreras entre movimientos concurrentes
		locked, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newQty := locked.Quantity
		switch in.Type {
		case entity.MovementTypeInbound:
			newQty = locked.Quantity + in.Quantity
			if in.UnitCost != nil {
				locked.UnitCost = domaininv.WeightedAverageCost(
					locked.Quantity, locked.UnitCost, in.Quantity, *in.UnitCost,
				)
			}
		case entity.MovementTypeOutbound:
			newQty = locked.Quantity - in.Quantity
			if newQty < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.MovementTypeAdjustment, entity.MovementTypeStocktake:
			newQty = in.Quantity
		case entity.MovementTypeTransfer:
			locked.LocationID = in.ToLocationID
		}

		locked.Quantity = newQty
		switch {
		case newQty == 0 && locked.Status == entity.ItemStatusActive:
			locked.Status = entity.ItemStatusOutOfStock
		case newQty > 0 && locked.Status == entity.ItemStatusOutOfStock:
			locked.Status = entity.ItemStatusActive
		}
		locked.UpdatedAt = now
		if err := itemRepo.Update(ctx, locked); err != nil {
			return err
		}

		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}

		return uc.syncLowStockAlert(ctx, alertRepo, locked, now)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:             movement.ID,
		ItemID:         movement.ItemID,
		ItemName:       item.Name,
		Type:           movement.Type,
		Quantity:       movement.Quantity,
		FromLocationID: movement.FromLocationID,
		ToLocationID:   movement.ToLocationID,
		Reference:      movement.Reference,
		UnitCost:       movement.UnitCost,
		Notes:          movement.Notes,
		PerformedBy:    movement.PerformedBy,
		CreatedAt:      movement.CreatedAt,
	}, nil
}

// syncLowStockAlert reevalúa la urgencia del ítem y sincroniza la alerta
// low_stock: upsert con la severidad vigente o borrado si ya no aplica.
// El motor no deduplica; la idempotencia la da el upsert por (item, tipo).
func (uc *RegisterMovementUseCase) syncLowStockAlert(
	ctx context.Context,
	alertRepo repository.AlertRepository,
	item *entity.InventoryItem,
	now time.Time,
) error {
	sev, ok := analytics.ClassifySeverity(item.Quantity, item.ReorderLevel)
	if !ok {
		if err := alertRepo.DeleteByItemAndType(ctx, item.ID, entity.AlertTypeLowStock); err != nil {
			return fmt.Errorf("resolver alerta low_stock: %w", err)
		}
		return nil
	}
	alert := &entity.Alert{
		ID:             uuid.New().String(),
		OrganizationID: item.OrganizationID,
		Type:           entity.AlertTypeLowStock,
		Severity:       string(sev),
		Title:          fmt.Sprintf("Low stock: %s", item.Name),
		Message: fmt.Sprintf("%s (%s) tiene %d %s en stock; punto de reorden %d",
			item.Name, item.SKU, item.Quantity, item.Unit, item.ReorderLevel),
		ItemID:    item.ID,
		IsRead:    false,
		CreatedAt: now,
	}
	if err := alertRepo.UpsertByItemAndType(ctx, alert); err != nil {
		return fmt.Errorf("upsert alerta low_stock: %w", err)
	}
	return nil
}
