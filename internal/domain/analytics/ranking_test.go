package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
)

// TestTopByQuantity_Top1 en el escenario de referencia, el top-1 es B (qty 20).
func TestTopByQuantity_Top1(t *testing.T) {
	top, err := analytics.TopByQuantity(sampleItems(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "B", top[0].SKU)
}

// TestTopByQuantity_DesempatePorSKU cantidades iguales se ordenan por SKU
// ascendente para garantizar un orden total reproducible.
func TestTopByQuantity_DesempatePorSKU(t *testing.T) {
	items := []analytics.Item{
		{SKU: "ZZ", Quantity: 10},
		{SKU: "AA", Quantity: 10},
		{SKU: "MM", Quantity: 10},
	}
	top, err := analytics.TopByQuantity(items, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "MM", "ZZ"}, []string{top[0].SKU, top[1].SKU, top[2].SKU})
}

// TestTopByQuantity_NCero n=0 devuelve secuencia vacía, no error.
func TestTopByQuantity_NCero(t *testing.T) {
	top, err := analytics.TopByQuantity(sampleItems(), 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

// TestTopByQuantity_NMayorQueSnapshot n mayor que el snapshot devuelve todos
// los ítems, sin relleno.
func TestTopByQuantity_NMayorQueSnapshot(t *testing.T) {
	top, err := analytics.TopByQuantity(sampleItems(), 50)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

// TestTopByQuantity_NNegativoFallaRapido n negativo es argumento inválido.
func TestTopByQuantity_NNegativoFallaRapido(t *testing.T) {
	_, err := analytics.TopByQuantity(sampleItems(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestTopByQuantity_Idempotente rankear el resultado de un rank-5 con n=5 de
// nuevo produce exactamente la misma secuencia.
func TestTopByQuantity_Idempotente(t *testing.T) {
	items := []analytics.Item{
		{SKU: "A", Quantity: 3, UnitCost: decimal.NewFromInt(1)},
		{SKU: "B", Quantity: 9},
		{SKU: "C", Quantity: 9},
		{SKU: "D", Quantity: 1},
		{SKU: "E", Quantity: 40},
		{SKU: "F", Quantity: 7},
		{SKU: "G", Quantity: 0},
	}
	first, err := analytics.TopByQuantity(items, 5)
	require.NoError(t, err)
	second, err := analytics.TopByQuantity(first, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTopByQuantity_NoMutaEntrada el snapshot de entrada queda intacto.
func TestTopByQuantity_NoMutaEntrada(t *testing.T) {
	items := []analytics.Item{
		{SKU: "A", Quantity: 1},
		{SKU: "B", Quantity: 99},
		{SKU: "C", Quantity: 50},
	}
	_, err := analytics.TopByQuantity(items, 2)
	require.NoError(t, err)
	assert.Equal(t, "A", items[0].SKU, "el orden original no debe cambiar")
	assert.Equal(t, "B", items[1].SKU)
	assert.Equal(t, "C", items[2].SKU)
}
