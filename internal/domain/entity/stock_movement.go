package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
// inbound suma, outbound resta; adjustment y stocktake fijan la cantidad absoluta
// (así lo registra el formulario de movimientos); transfer reubica sin cambiar cantidad.
const (
	MovementTypeInbound    = "inbound"
	MovementTypeOutbound   = "outbound"
	MovementTypeTransfer   = "transfer"
	MovementTypeAdjustment = "adjustment"
	MovementTypeStocktake  = "stocktake"
)

// StockMovement representa un movimiento de inventario de un ítem.
type StockMovement struct {
	ID             string
	OrganizationID string
	ItemID         string
	Type           string // inbound, outbound, transfer, adjustment, stocktake
	Quantity       int64  // > 0; en adjustment/stocktake es el valor absoluto a fijar
	FromLocationID string
	ToLocationID   string
	Reference      string // factura, orden de compra, nota de ajuste…
	UnitCost       decimal.Decimal
	Notes          string
	PerformedBy    string // ProfileID
	CreatedAt      time.Time
}
