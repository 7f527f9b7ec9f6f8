package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador de organizaciones. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, description, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		org.ID, org.Name, org.Description, org.Settings, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID. Devuelve nil si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, description, settings, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Description, &o.Settings, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// List lista todas las organizaciones (uso administrativo y seed).
func (r *OrganizationRepo) List(ctx context.Context) ([]*entity.Organization, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description, settings, created_at, updated_at FROM organizations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.Settings, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
