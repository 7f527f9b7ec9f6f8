package analytics

// ClassifySeverity aplica la tabla de urgencia de stock bajo (regla de negocio
// visible, no un detalle de implementación):
//
//	quantity == 0                                → critical
//	0 < quantity < reorder_level / 2             → high
//	reorder_level / 2 <= quantity <= reorder     → medium
//	quantity > reorder_level                     → sin alerta
//
// En el límite exacto de la mitad (quantity == reorder_level × 0.5) la urgencia
// es medium: un ítem con qty=5 y reorden=10 clasifica medium. La comparación se
// hace con enteros (2×qty vs reorden) para evitar aritmética flotante.
// Devuelve ok=false cuando el ítem no amerita alerta.
func ClassifySeverity(quantity, reorderLevel int64) (sev Severity, ok bool) {
	switch {
	case quantity == 0:
		return SeverityCritical, true
	case quantity > reorderLevel:
		return "", false
	case 2*quantity < reorderLevel:
		return SeverityHigh, true
	default:
		return SeverityMedium, true
	}
}

// EvaluateLowStock genera cero o una alerta por ítem del snapshot según la tabla
// de severidad. Los ítems sobre su punto de reorden no generan alerta. El motor
// no deduplica contra alertas previas; eso corresponde al upsert del almacén.
func EvaluateLowStock(items []Item) []LowStockAlert {
	var alerts []LowStockAlert
	for _, it := range items {
		sev, ok := ClassifySeverity(it.Quantity, it.ReorderLevel)
		if !ok {
			continue
		}
		alerts = append(alerts, LowStockAlert{
			ItemID:       it.ID,
			SKU:          it.SKU,
			Name:         it.Name,
			Quantity:     it.Quantity,
			ReorderLevel: it.ReorderLevel,
			Severity:     sev,
		})
	}
	return alerts
}
