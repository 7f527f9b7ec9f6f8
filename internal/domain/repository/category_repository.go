package repository

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
