package analytics_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
)

// sampleItems escenario de referencia del motor:
//
//	A: qty 5,  reorden 10, costo 2.00  → bajo stock, valor 10.00
//	B: qty 20, reorden 5,  costo 1.50  → ok,         valor 30.00
func sampleItems() []analytics.Item {
	return []analytics.Item{
		{
			ID: "item-a", SKU: "A", Name: "Widget A", Quantity: 5, Unit: "pcs",
			UnitCost:     decimal.RequireFromString("2.00"),
			SellingPrice: decimal.RequireFromString("3.50"),
			ReorderLevel: 10, Status: "active",
		},
		{
			ID: "item-b", SKU: "B", Name: "Widget B", Quantity: 20, Unit: "pcs",
			UnitCost:     decimal.RequireFromString("1.50"),
			SellingPrice: decimal.RequireFromString("2.75"),
			ReorderLevel: 5, Status: "active",
		},
	}
}

// TestValuate_EscenarioReferencia valida el escenario canónico completo:
// totalValue=40.00, lowStockCount=1, totalItems=2.
func TestValuate_EscenarioReferencia(t *testing.T) {
	summary := analytics.Valuate(sampleItems())

	assert.Equal(t, 2, summary.TotalItems)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("40.00")),
		"totalValue debe ser 40.00, fue %s", summary.TotalValue)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Empty(t, summary.DataQuality)
}

// TestValuate_SnapshotVacio un snapshot vacío produce resumen en ceros, no error.
func TestValuate_SnapshotVacio(t *testing.T) {
	summary := analytics.Valuate(nil)

	assert.Equal(t, 0, summary.TotalItems)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Equal(t, 0, summary.LowStockCount)
}

// TestValuate_InvarianteBajoReordenamiento la suma es conmutativa: barajar el
// snapshot no cambia el resultado.
func TestValuate_InvarianteBajoReordenamiento(t *testing.T) {
	items := make([]analytics.Item, 0, 50)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		items = append(items, analytics.Item{
			ID:           string(rune('a' + i%26)),
			SKU:          string(rune('A' + i%26)),
			Quantity:     int64(rng.Intn(500)),
			UnitCost:     decimal.NewFromInt(int64(rng.Intn(100))).Div(decimal.NewFromInt(4)),
			ReorderLevel: int64(rng.Intn(50)),
		})
	}
	base := analytics.Valuate(items)

	shuffled := make([]analytics.Item, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	again := analytics.Valuate(shuffled)

	assert.True(t, base.TotalValue.Equal(again.TotalValue),
		"totalValue debe ser invariante al orden: %s vs %s", base.TotalValue, again.TotalValue)
	assert.Equal(t, base.LowStockCount, again.LowStockCount)
	assert.LessOrEqual(t, base.LowStockCount, base.TotalItems,
		"lowStockCount nunca puede exceder totalItems")
}

// TestValuate_SinDerivaDeCentavos con decimal no hay deriva flotante: 10.000
// ítems de costo 0.10 valen exactamente 1000.00.
func TestValuate_SinDerivaDeCentavos(t *testing.T) {
	items := make([]analytics.Item, 0, 10_000)
	for i := 0; i < 10_000; i++ {
		items = append(items, analytics.Item{
			ID: "x", Quantity: 1,
			UnitCost:     decimal.RequireFromString("0.10"),
			ReorderLevel: 0,
		})
	}
	summary := analytics.Valuate(items)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("1000.00")),
		"la suma monetaria debe ser exacta, fue %s", summary.TotalValue)
}

// TestValuate_CalidadDeDatos los valores negativos se reportan pero se suman tal
// cual; nunca se corrigen en silencio ni abortan el cálculo.
func TestValuate_CalidadDeDatos(t *testing.T) {
	items := []analytics.Item{
		{ID: "neg-qty", SKU: "N1", Quantity: -3, UnitCost: decimal.NewFromInt(2), ReorderLevel: 1},
		{ID: "neg-cost", SKU: "N2", Quantity: 4, UnitCost: decimal.NewFromInt(-1), ReorderLevel: 1},
		{ID: "ok", SKU: "OK", Quantity: 10, UnitCost: decimal.NewFromInt(1), ReorderLevel: 1},
	}
	summary := analytics.Valuate(items)

	require.ElementsMatch(t, []string{"neg-qty", "neg-cost"}, summary.DataQuality)
	// (-3×2) + (4×-1) + (10×1) = 0
	assert.True(t, summary.TotalValue.IsZero(),
		"los valores crudos se suman sin corregir, fue %s", summary.TotalValue)
	assert.Equal(t, 3, summary.TotalItems)
}
