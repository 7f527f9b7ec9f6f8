package repository

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// ProfileRepository puerto de persistencia para perfiles de usuario.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}

// OrganizationRepository puerto de persistencia para organizaciones.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	List(ctx context.Context) ([]*entity.Organization, error)
}
