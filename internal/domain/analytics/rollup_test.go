package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
)

func rollupFixture() ([]analytics.Item, []analytics.GroupRef) {
	items := []analytics.Item{
		{ID: "1", SKU: "A", Quantity: 2, UnitCost: decimal.NewFromInt(10), CategoryID: "cat-elec"},
		{ID: "2", SKU: "B", Quantity: 3, UnitCost: decimal.NewFromInt(5), CategoryID: "cat-elec"},
		{ID: "3", SKU: "C", Quantity: 1, UnitCost: decimal.NewFromInt(7), CategoryID: "cat-food"},
		{ID: "4", SKU: "D", Quantity: 4, UnitCost: decimal.NewFromInt(1)}, // sin categoría
		{ID: "5", SKU: "E", Quantity: 2, UnitCost: decimal.NewFromInt(3), CategoryID: "cat-borrada"}, // referencia huérfana
	}
	categories := []analytics.GroupRef{
		{ID: "cat-elec", Name: "Electrónica"},
		{ID: "cat-food", Name: "Alimentos"},
		{ID: "cat-empty", Name: "Vacía"},
	}
	return items, categories
}

// TestRollupByCategory_AsignacionDirecta cada ítem cuenta solo en su categoría
// directa; los sin categoría o con referencia huérfana caen en "uncategorized".
func TestRollupByCategory_AsignacionDirecta(t *testing.T) {
	items, categories := rollupFixture()
	buckets := analytics.RollupByCategory(items, categories)

	elec := buckets["cat-elec"]
	assert.Equal(t, 2, elec.Count)
	assert.True(t, elec.Value.Equal(decimal.NewFromInt(35)), "2×10 + 3×5 = 35, fue %s", elec.Value)

	food := buckets["cat-food"]
	assert.Equal(t, 1, food.Count)
	assert.True(t, food.Value.Equal(decimal.NewFromInt(7)))

	uncat, ok := buckets[analytics.UncategorizedKey]
	require.True(t, ok, "debe existir el bucket uncategorized")
	assert.Equal(t, 2, uncat.Count, "ítem sin categoría + referencia huérfana")
	assert.True(t, uncat.Value.Equal(decimal.NewFromInt(10)), "4×1 + 2×3 = 10, fue %s", uncat.Value)

	// Una categoría sin ítems aparece con conteo cero (la UI la lista igual)
	empty := buckets["cat-empty"]
	assert.Equal(t, 0, empty.Count)
	assert.True(t, empty.Value.IsZero())
}

// TestRollupByCategory_LeyDeConservacion Σ count == totalItems y Σ value ==
// totalValue de Valuate sobre el mismo snapshot.
func TestRollupByCategory_LeyDeConservacion(t *testing.T) {
	items, categories := rollupFixture()
	buckets := analytics.RollupByCategory(items, categories)
	summary := analytics.Valuate(items)

	totalCount := 0
	totalValue := decimal.Zero
	for _, b := range buckets {
		totalCount += b.Count
		totalValue = totalValue.Add(b.Value)
	}
	assert.Equal(t, summary.TotalItems, totalCount)
	assert.True(t, summary.TotalValue.Equal(totalValue),
		"la suma de buckets (%s) debe igualar el total de valorización (%s)", totalValue, summary.TotalValue)
}

// TestRollupByCategory_SnapshotVacio sin ítems: buckets de categorías en cero y
// sin bucket uncategorized.
func TestRollupByCategory_SnapshotVacio(t *testing.T) {
	_, categories := rollupFixture()
	buckets := analytics.RollupByCategory(nil, categories)

	assert.Len(t, buckets, len(categories))
	_, ok := buckets[analytics.UncategorizedKey]
	assert.False(t, ok, "uncategorized no aparece si ningún ítem cayó ahí")
}

// TestRollupBySupplier_BucketUnassigned el roll-up por proveedor comparte la
// misma mecánica, con bucket "unassigned" para ítems sin proveedor.
func TestRollupBySupplier_BucketUnassigned(t *testing.T) {
	items := []analytics.Item{
		{ID: "1", SKU: "A", Quantity: 1, UnitCost: decimal.NewFromInt(4), SupplierID: "sup-1"},
		{ID: "2", SKU: "B", Quantity: 2, UnitCost: decimal.NewFromInt(6)},
	}
	suppliers := []analytics.GroupRef{{ID: "sup-1", Name: "Acme Ltda"}}

	buckets := analytics.RollupBySupplier(items, suppliers)

	assert.Equal(t, 1, buckets["sup-1"].Count)
	un := buckets[analytics.UnassignedSupplierKey]
	assert.Equal(t, 1, un.Count)
	assert.True(t, un.Value.Equal(decimal.NewFromInt(12)))
}
