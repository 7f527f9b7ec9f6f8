package repository

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// LocationRepository puerto de persistencia para ubicaciones físicas.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id string) error
}
