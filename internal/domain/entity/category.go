package entity

import "time"

// Category representa una categoría de ítems (jerárquica opcional vía ParentID).
// El árbol no se valida acíclico aquí; es invariante del almacén externo.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
	Description    string
	ParentID       string // vacío si es raíz
	Color          string // color hex para la UI, ej. "#3B82F6"
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
