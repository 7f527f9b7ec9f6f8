package entity

import "time"

// Roles de usuario dentro de una organización.
// viewer solo lectura; manager opera inventario; admin administra todo.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// Profile representa un usuario del sistema con su rol y organización.
type Profile struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string
	FullName       string
	AvatarURL      string
	Role           string // admin, manager, viewer
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
