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

const defaultCategoryColor = "#3B82F6"

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create persiste una categoría nueva. ParentID, si viene, debe existir y ser
// de la misma organización.
func (uc *CategoryUseCase) Create(ctx context.Context, orgID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.categoryRepo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.OrganizationID != orgID {
			return nil, domain.ErrNotFound
		}
	}
	color := in.Color
	if color == "" {
		color = defaultCategoryColor
	}
	now := time.Now()
	cat := &entity.Category{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Description:    in.Description,
		ParentID:       in.ParentID,
		Color:          color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List lista las categorías de la organización.
func (uc *CategoryUseCase) List(ctx context.Context, orgID string) ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update modifica una categoría existente.
func (uc *CategoryUseCase) Update(ctx context.Context, orgID, id string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	if cat.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID == id {
		return nil, domain.ErrInvalidInput // una categoría no puede ser su propio padre
	}
	cat.Name = in.Name
	cat.Description = in.Description
	cat.ParentID = in.ParentID
	if in.Color != "" {
		cat.Color = in.Color
	}
	cat.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina una categoría; los ítems que la referencien pasan a contar en
// el bucket "uncategorized" de los reportes.
func (uc *CategoryUseCase) Delete(ctx context.Context, orgID, id string) error {
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	if cat.OrganizationID != orgID {
		return domain.ErrForbidden
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
