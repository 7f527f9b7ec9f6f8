package entity

import "time"

// Supplier representa un proveedor de la organización.
type Supplier struct {
	ID             string
	OrganizationID string
	Name           string
	ContactPerson  string
	Email          string
	Phone          string
	Address        string
	LeadTimeDays   int // días estimados de entrega
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
