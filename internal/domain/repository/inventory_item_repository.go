package repository

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia para ítems de inventario.
// Todas las consultas están acotadas por organización (multi-tenant).
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, orgID, sku string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.InventoryItem, error)
	// Search filtra por coincidencia en SKU o nombre (insensible a tildes y mayúsculas).
	Search(ctx context.Context, orgID, query string) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
}
