package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de un ítem de inventario.
type CreateItemRequest struct {
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	SupplierID   string          `json:"supplier_id"`
	LocationID   string          `json:"location_id"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ReorderLevel int64           `json:"reorder_level"`
	ReorderQty   int64           `json:"reorder_quantity"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
}

// UpdateItemRequest modificación de un ítem. La cantidad no se edita aquí:
// el stock solo cambia vía movimientos.
type UpdateItemRequest struct {
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	SupplierID   string          `json:"supplier_id"`
	LocationID   string          `json:"location_id"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ReorderLevel int64           `json:"reorder_level"`
	ReorderQty   int64           `json:"reorder_quantity"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
	Status       string          `json:"status"`
}

// ItemResponse ítem expuesto por la API.
type ItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	LocationID   string          `json:"location_id,omitempty"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalValue   decimal.Decimal `json:"total_value"` // quantity × unit_cost
	ReorderLevel int64           `json:"reorder_level"`
	ReorderQty   int64           `json:"reorder_quantity"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Status       string          `json:"status"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// RegisterMovementRequest registra un movimiento de stock.
// Para transfer son obligatorios from_location_id y to_location_id.
type RegisterMovementRequest struct {
	ItemID         string           `json:"item_id"`
	Type           string           `json:"type"` // inbound, outbound, transfer, adjustment, stocktake
	Quantity       int64            `json:"quantity"`
	FromLocationID string           `json:"from_location_id"`
	ToLocationID   string           `json:"to_location_id"`
	Reference      string           `json:"reference"`
	UnitCost       *decimal.Decimal `json:"unit_cost"`
	Notes          string           `json:"notes"`
}

// MovementResponse movimiento expuesto por la API.
type MovementResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name,omitempty"`
	Type           string          `json:"type"`
	Quantity       int64           `json:"quantity"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	Notes          string          `json:"notes,omitempty"`
	PerformedBy    string          `json:"performed_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int                `json:"total"`
}
