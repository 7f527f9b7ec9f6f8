package analytics

import "github.com/shopspring/decimal"

// Valuate calcula en una sola pasada el valor total del inventario, el total de
// ítems y cuántos están en o bajo su punto de reorden.
//
// Un snapshot vacío produce un resumen en ceros, nunca un error. Los ítems con
// cantidad, costo o reorden negativos se anotan en DataQuality pero se suman con
// los valores dados: la remediación es decisión del llamador.
func Valuate(items []Item) ValuationSummary {
	summary := ValuationSummary{
		TotalItems: len(items),
		TotalValue: decimal.Zero,
	}
	for _, it := range items {
		summary.TotalValue = summary.TotalValue.Add(
			decimal.NewFromInt(it.Quantity).Mul(it.UnitCost),
		)
		if it.Quantity <= it.ReorderLevel {
			summary.LowStockCount++
		}
		if it.Quantity < 0 || it.ReorderLevel < 0 || it.UnitCost.IsNegative() {
			summary.DataQuality = append(summary.DataQuality, it.ID)
		}
	}
	return summary
}

// ItemValue devuelve el valor monetario de un ítem (quantity × unit_cost).
func ItemValue(it Item) decimal.Decimal {
	return decimal.NewFromInt(it.Quantity).Mul(it.UnitCost)
}
