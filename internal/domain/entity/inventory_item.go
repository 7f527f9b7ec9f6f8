package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ítem de inventario.
const (
	ItemStatusActive       = "active"
	ItemStatusDiscontinued = "discontinued"
	ItemStatusOutOfStock   = "out_of_stock"
)

// InventoryItem representa un ítem/SKU del inventario de una organización.
// Quantity, UnitCost y ReorderLevel nunca deberían ser negativos; una violación
// es un problema de calidad de datos que el motor de analítica reporta sin corregir.
type InventoryItem struct {
	ID             string
	OrganizationID string
	SKU            string // único por organización
	Barcode        string
	Name           string
	Description    string
	CategoryID     string // vacío si no tiene categoría
	SupplierID     string
	LocationID     string
	Quantity       int64
	Unit           string // etiqueta de unidad: "pcs", "kg", "box"…
	UnitCost       decimal.Decimal
	SellingPrice   decimal.Decimal
	ReorderLevel   int64 // umbral de stock bajo (inclusive)
	ReorderQty     int64 // cantidad sugerida de pedido
	ExpiryDate     *time.Time
	Status         string // active, discontinued, out_of_stock
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
