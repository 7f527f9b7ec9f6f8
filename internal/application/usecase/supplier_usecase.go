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

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create persiste un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, orgID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sup := &entity.Supplier{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		ContactPerson:  in.ContactPerson,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		LeadTimeDays:   in.LeadTimeDays,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.supplierRepo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

// List lista los proveedores de la organización.
func (uc *SupplierUseCase) List(ctx context.Context, orgID string) ([]dto.SupplierResponse, error) {
	sups, err := uc.supplierRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(sups))
	for _, s := range sups {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Update modifica un proveedor existente.
func (uc *SupplierUseCase) Update(ctx context.Context, orgID, id string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, nil
	}
	if sup.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	sup.Name = in.Name
	sup.ContactPerson = in.ContactPerson
	sup.Email = in.Email
	sup.Phone = in.Phone
	sup.Address = in.Address
	sup.LeadTimeDays = in.LeadTimeDays
	sup.Notes = in.Notes
	sup.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

// Delete elimina un proveedor de la organización.
func (uc *SupplierUseCase) Delete(ctx context.Context, orgID, id string) error {
	sup, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sup == nil {
		return domain.ErrNotFound
	}
	if sup.OrganizationID != orgID {
		return domain.ErrForbidden
	}
	return uc.supplierRepo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		LeadTimeDays:  s.LeadTimeDays,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
