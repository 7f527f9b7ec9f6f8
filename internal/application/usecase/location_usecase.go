package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// LocationUseCase CRUD de ubicaciones físicas.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// Create persiste una ubicación nueva.
func (uc *LocationUseCase) Create(ctx context.Context, orgID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.LocationTypeWarehouse, entity.LocationTypeStore, entity.LocationTypeDepot:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.Location{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Address:        in.Address,
		Type:           in.Type,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista las ubicaciones de la organización.
func (uc *LocationUseCase) List(ctx context.Context, orgID string) ([]dto.LocationResponse, error) {
	locs, err := uc.locationRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// Update modifica una ubicación existente de la organización.
func (uc *LocationUseCase) Update(ctx context.Context, orgID, id string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	if loc.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.LocationTypeWarehouse, entity.LocationTypeStore, entity.LocationTypeDepot:
	default:
		return nil, domain.ErrInvalidInput
	}
	loc.Name = in.Name
	loc.Address = in.Address
	loc.Type = in.Type
	loc.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Delete elimina una ubicación de la organización.
func (uc *LocationUseCase) Delete(ctx context.Context, orgID, id string) error {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if loc.OrganizationID != orgID {
		return domain.ErrForbidden
	}
	return uc.locationRepo.Delete(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		Type:      l.Type,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
