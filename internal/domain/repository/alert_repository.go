package repository

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// AlertRepository puerto de persistencia para alertas.
// La deduplicación de alertas vive aquí, no en el motor: UpsertByItemAndType es
// idempotente por (item_id, type) y actualiza severidad/mensaje si ya existe.
type AlertRepository interface {
	UpsertByItemAndType(ctx context.Context, alert *entity.Alert) error
	// DeleteByItemAndType resuelve la alerta cuando el ítem vuelve sobre su reorden.
	DeleteByItemAndType(ctx context.Context, itemID, alertType string) error
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	ListByOrganization(ctx context.Context, orgID string, onlyUnread bool, limit int) ([]*entity.Alert, error)
	MarkRead(ctx context.Context, id string) error
	Acknowledge(ctx context.Context, id, profileID string) error
}
