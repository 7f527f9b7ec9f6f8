package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia para movimientos de inventario.
// Los movimientos son inmutables: solo insert y lecturas.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListRecent devuelve los últimos movimientos para el widget del dashboard.
	ListRecent(ctx context.Context, orgID string, limit int) ([]*entity.StockMovement, error)
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error)
	// CountSince cuenta movimientos desde una fecha ("movimientos del mes" en reportes).
	CountSince(ctx context.Context, orgID string, since time.Time) (int, error)
}
