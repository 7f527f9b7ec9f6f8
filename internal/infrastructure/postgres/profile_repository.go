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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, organization_id, email, password_hash, full_name, avatar_url, role, status, created_at, updated_at`

// ProfileRepo implementación de ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (r *ProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		profile.ID, profile.OrganizationID, profile.Email, profile.PasswordHash,
		profile.FullName, profile.AvatarURL, profile.Role, profile.Status,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. Devuelve nil si no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get profile")
}

// FindByEmail obtiene un perfil por email. Devuelve nil si no existe.
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "find profile by email")
}

// ListByOrganization lista los perfiles de la organización.
func (r *ProfileRepo) ListByOrganization(ctx context.Context, orgID string) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE organization_id = $1 ORDER BY full_name ASC`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Email, &p.PasswordHash, &p.FullName,
			&p.AvatarURL, &p.Role, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un perfil existente.
func (r *ProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles SET email = $2, password_hash = $3, full_name = $4, avatar_url = $5, role = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		profile.ID, profile.Email, profile.PasswordHash, profile.FullName,
		profile.AvatarURL, profile.Role, profile.Status, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) scanOne(row pgx.Row, op string) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Email, &p.PasswordHash, &p.FullName,
		&p.AvatarURL, &p.Role, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
