package entity

import (
	"encoding/json"
	"time"
)

// Organization agrupa todo el inventario de un tenant. Toda entidad pertenece
// a exactamente una organización; los repositorios filtran siempre por OrganizationID.
type Organization struct {
	ID          string
	Name        string
	Description string
	Settings    json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
