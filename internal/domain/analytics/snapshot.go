package analytics

import "github.com/jhoicas/stocklens-api/internal/domain/entity"

// Snapshot construye la proyección del motor desde las entidades del dominio.
// La copia garantiza que el motor nunca mute las entidades de entrada.
func Snapshot(items []*entity.InventoryItem) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, Item{
			ID:           it.ID,
			SKU:          it.SKU,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			UnitCost:     it.UnitCost,
			SellingPrice: it.SellingPrice,
			ReorderLevel: it.ReorderLevel,
			Status:       it.Status,
			CategoryID:   it.CategoryID,
			SupplierID:   it.SupplierID,
		})
	}
	return out
}

// CategoryRefs proyecta categorías a referencias de roll-up.
func CategoryRefs(categories []*entity.Category) []GroupRef {
	out := make([]GroupRef, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		out = append(out, GroupRef{ID: c.ID, Name: c.Name})
	}
	return out
}

// SupplierRefs proyecta proveedores a referencias de roll-up.
func SupplierRefs(suppliers []*entity.Supplier) []GroupRef {
	out := make([]GroupRef, 0, len(suppliers))
	for _, s := range suppliers {
		if s == nil {
			continue
		}
		out = append(out, GroupRef{ID: s.ID, Name: s.Name})
	}
	return out
}
