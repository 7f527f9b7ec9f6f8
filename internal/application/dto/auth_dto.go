package dto

import "time"

// RegisterRequest alta de usuario. Con organization_id el usuario se une a una
// organización existente; con organization_name se crea una nueva y el usuario
// queda como admin fundador. Exactamente una de las dos.
type RegisterRequest struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"` // admin, manager, viewer; viewer por defecto
}

// UpdateProfileRequest ajustes del perfil autenticado.
type UpdateProfileRequest struct {
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse perfil expuesto por la API (sin hash de contraseña).
type ProfileResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LoginResponse token JWT más el perfil autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// OrganizationResponse organización expuesta al formulario de registro.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
