package inventory

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que aplicar el movimiento, ajustar el
// stock y upsertar/resolver la alerta de stock bajo sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
