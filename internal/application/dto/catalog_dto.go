package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoryRequest alta/edición de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
	Color       string `json:"color"`
}

// CategoryResponse categoría expuesta por la API.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplierRequest alta/edición de proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LeadTimeDays  int    `json:"lead_time_days"`
	Notes         string `json:"notes"`
}

// SupplierResponse proveedor expuesto por la API.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	LeadTimeDays  int       `json:"lead_time_days"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

// CreateLocationRequest alta/edición de ubicación.
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"` // warehouse, store, depot
}

// LocationResponse ubicación expuesta por la API.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// AlertResponse alerta expuesta por la API.
type AlertResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Severity  string     `json:"severity"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ItemID    string     `json:"item_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	AckedAt   *time.Time `json:"acknowledged_at,omitempty"`
}

// ── Valoración PDF ────────────────────────────────────────────────────────────

// ValuationLineDTO fila del reporte PDF de valorización.
type ValuationLineDTO struct {
	SKU      string
	Name     string
	Quantity int64
	Unit     string
	UnitCost decimal.Decimal
	Value    decimal.Decimal
	LowStock bool
}
