// Package analytics implementa el motor de analítica de inventario: valorización,
// detección de stock bajo, ranking top-N, roll-ups por categoría/proveedor,
// clasificación de severidad de alertas y exportación CSV.
//
// Todas las funciones son puras: operan sobre un snapshot inmutable ya materializado,
// no hacen I/O, no mutan sus entradas y devuelven objetos frescos en cada invocación.
// La concurrencia (fetch paralelo, notificaciones push, debounce) es responsabilidad
// del llamador.
package analytics

import "github.com/shopspring/decimal"

// Item es la proyección mínima de un ítem de inventario que consume el motor.
// Se define aparte de entity.InventoryItem para que cada función reciba un tipo
// estrecho y tipado en lugar de un registro abierto del backend.
type Item struct {
	ID           string
	SKU          string
	Name         string
	Quantity     int64
	Unit         string
	UnitCost     decimal.Decimal
	SellingPrice decimal.Decimal
	ReorderLevel int64
	Status       string
	CategoryID   string // vacío si no tiene categoría
	SupplierID   string // vacío si no tiene proveedor
}

// ValuationSummary resume la valorización de un snapshot completo.
// DataQuality lista los IDs de ítems con valores negativos (cantidad, costo o
// punto de reorden): se reportan pero se suman tal cual, nunca se corrigen.
type ValuationSummary struct {
	TotalItems    int
	TotalValue    decimal.Decimal // Σ quantity × unit_cost
	LowStockCount int             // ítems con quantity <= reorder_level
	DataQuality   []string        // IDs con violaciones de calidad de datos
}

// Bucket acumula conteo y valor de los ítems asignados directamente a un grupo
// (categoría o proveedor). No hay roll-up jerárquico hacia categorías padre.
type Bucket struct {
	Name  string
	Count int
	Value decimal.Decimal
}

// Severity urgencia de una alerta de stock bajo.
type Severity string

// Severidades en orden creciente de urgencia.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// LowStockAlert es el borrador de alerta que produce el motor para un ítem en
// o bajo su punto de reorden. El motor no deduplica contra alertas ya emitidas;
// el almacén externo hace upsert idempotente por (ItemID, tipo).
type LowStockAlert struct {
	ItemID       string
	SKU          string
	Name         string
	Quantity     int64
	ReorderLevel int64
	Severity     Severity
}
