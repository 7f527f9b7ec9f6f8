package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Replica las tarjetas del dashboard: totales, alertas de stock bajo, valor del
// inventario y actividad reciente, todo recalculado desde el snapshot vigente.
type DashboardSummaryDTO struct {
	TotalItems      int              `json:"total_items"`
	LowStockItems   int              `json:"low_stock_items"`
	TotalValue      decimal.Decimal  `json:"total_value"` // Σ quantity × unit_cost
	StockMovements  int              `json:"stock_movements"`
	DataQualityIDs  []string         `json:"data_quality_ids,omitempty"` // ítems con valores negativos
	TopItems        []TopItemDTO     `json:"top_items"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	Alerts          []AlertResponse  `json:"alerts"`
}

// TopItemDTO entrada del widget "Top Items by Stock".
type TopItemDTO struct {
	Rank       int             `json:"rank"`
	ItemID     string          `json:"item_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	Unit       string          `json:"unit"`
	TotalValue decimal.Decimal `json:"total_value"`
}
