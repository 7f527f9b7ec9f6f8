package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
	"github.com/jhoicas/stocklens-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y perfil: registro (con alta de
// organización si es el fundador), login y ajustes del perfil autenticado.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	orgRepo     repository.OrganizationRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// Register crea un perfil: hashea la contraseña con bcrypt y persiste.
//
// Con organization_id el usuario se une a una organización existente (rol por
// defecto viewer; roles desconocidos se rechazan). Con organization_name se
// provisiona una organización nueva y el usuario queda como admin fundador.
// Exactamente una de las dos variantes es válida por petición.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if (in.OrganizationID == "") == (in.OrganizationName == "") {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleViewer:
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.profileRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	orgID := in.OrganizationID
	if orgID != "" {
		org, err := uc.orgRepo.GetByID(ctx, orgID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound // la organización no existe
		}
	} else {
		// Alta de organización: el primer usuario es el admin fundador
		org := &entity.Organization{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(in.OrganizationName),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if org.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.orgRepo.Create(ctx, org); err != nil {
			return nil, err
		}
		orgID = org.ID
		role = entity.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.FullName
	if name == "" {
		name = in.Email
	}
	profile := &entity.Profile{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		FullName:       name,
		Role:           role,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Login verifica email/password, genera JWT (con organización y rol en los
// claims) y retorna token + perfil.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if profile.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.OrganizationID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toProfileResponse(profile),
	}, nil
}

// GetProfile devuelve el perfil autenticado (pantalla de ajustes).
func (uc *AuthUseCase) GetProfile(ctx context.Context, profileID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile actualiza los datos editables del perfil autenticado (nombre
// completo y avatar); email, rol y estado no se tocan por esta vía.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, profileID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	profile.FullName = name
	if in.AvatarURL != nil {
		profile.AvatarURL = *in.AvatarURL
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// ListMembers lista los perfiles de la organización (vista de equipo).
func (uc *AuthUseCase) ListMembers(ctx context.Context, orgID string) ([]dto.ProfileResponse, error) {
	profiles, err := uc.profileRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *toProfileResponse(p))
	}
	return out, nil
}

// ListOrganizations lista las organizaciones registradas, para que el
// formulario de registro ofrezca a cuál unirse.
func (uc *AuthUseCase) ListOrganizations(ctx context.Context) ([]dto.OrganizationResponse, error) {
	orgs, err := uc.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, dto.OrganizationResponse{
			ID:        o.ID,
			Name:      o.Name,
			CreatedAt: o.CreatedAt,
		})
	}
	return out, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
