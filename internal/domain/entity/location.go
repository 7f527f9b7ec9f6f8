package entity

import "time"

// Tipos de ubicación física.
const (
	LocationTypeWarehouse = "warehouse"
	LocationTypeStore     = "store"
	LocationTypeDepot     = "depot"
)

// Location representa una ubicación física donde se almacena inventario.
type Location struct {
	ID             string
	OrganizationID string
	Name           string
	Address        string
	Type           string // warehouse, store, depot
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
