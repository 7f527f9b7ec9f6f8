package analytics

import "github.com/shopspring/decimal"

// UncategorizedKey clave del bucket para ítems sin categoría (o con referencia
// a una categoría que no existe en el snapshot suministrado).
const UncategorizedKey = "uncategorized"

// UnassignedSupplierKey clave del bucket para ítems sin proveedor asignado.
const UnassignedSupplierKey = "unassigned"

// GroupRef referencia mínima de un grupo (categoría o proveedor) para roll-up.
type GroupRef struct {
	ID   string
	Name string
}

// RollupByCategory agrega conteo y valor por categoría, considerando solo la
// asignación directa de cada ítem. No se hace roll-up hacia categorías padre:
// la jerarquía existe en el modelo pero ninguna agregación la recorre.
//
// Los ítems cuya referencia es vacía o no coincide con ninguna categoría del
// snapshot caen en el bucket explícito "uncategorized". Ley de conservación:
// la suma de Count sobre todos los buckets es len(items) y la suma de Value
// es el TotalValue de Valuate sobre el mismo snapshot.
func RollupByCategory(items []Item, categories []GroupRef) map[string]Bucket {
	return rollup(items, categories, UncategorizedKey, "Uncategorized", func(it Item) string {
		return it.CategoryID
	})
}

// RollupBySupplier agrega conteo y valor por proveedor, con bucket "unassigned"
// para ítems sin proveedor. Mismas leyes de conservación que RollupByCategory.
func RollupBySupplier(items []Item, suppliers []GroupRef) map[string]Bucket {
	return rollup(items, suppliers, UnassignedSupplierKey, "Unassigned", func(it Item) string {
		return it.SupplierID
	})
}

func rollup(items []Item, groups []GroupRef, fallbackKey, fallbackName string, keyOf func(Item) string) map[string]Bucket {
	known := make(map[string]string, len(groups))
	for _, g := range groups {
		known[g.ID] = g.Name
	}

	buckets := make(map[string]Bucket, len(groups)+1)
	for _, g := range groups {
		buckets[g.ID] = Bucket{Name: g.Name, Value: decimal.Zero}
	}

	for _, it := range items {
		key := keyOf(it)
		name, ok := known[key]
		if key == "" || !ok {
			key, name = fallbackKey, fallbackName
		}
		b, exists := buckets[key]
		if !exists {
			b = Bucket{Name: name, Value: decimal.Zero}
		}
		b.Count++
		b.Value = b.Value.Add(ItemValue(it))
		buckets[key] = b
	}

	// No emitir el bucket de fallback si quedó vacío
	if b, ok := buckets[fallbackKey]; ok && b.Count == 0 {
		delete(buckets, fallbackKey)
	}
	return buckets
}
