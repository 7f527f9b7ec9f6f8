package dto

import "github.com/shopspring/decimal"

// ReportsSummaryDTO respuesta de GET /api/reports/summary.
type ReportsSummaryDTO struct {
	TotalValue         decimal.Decimal      `json:"total_value"`
	TotalItems         int                  `json:"total_items"`
	LowStockCount      int                  `json:"low_stock_count"`
	MovementsThisMonth int                  `json:"movements_this_month"`
	DataQualityIDs     []string             `json:"data_quality_ids,omitempty"`
	TopItems           []TopItemDTO         `json:"top_items"`
	CategoryBreakdown  []BreakdownBucketDTO `json:"category_breakdown"`
	SupplierBreakdown  []BreakdownBucketDTO `json:"supplier_breakdown"`
}

// BreakdownBucketDTO bucket de roll-up por categoría o proveedor.
// El bucket "uncategorized"/"unassigned" agrupa ítems sin referencia válida.
type BreakdownBucketDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// ExportResultDTO blob CSV listo para descargar; el nombre de archivo es una
// sugerencia, la mecánica de descarga pertenece a la UI.
type ExportResultDTO struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
