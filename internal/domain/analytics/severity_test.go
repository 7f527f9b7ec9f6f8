package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
)

// TestClassifySeverity_TablaDeReglas la tabla de urgencia es una regla de
// negocio visible; cada banda y cada borde se fija aquí.
func TestClassifySeverity_TablaDeReglas(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		reorder  int64
		want     analytics.Severity
		hasAlert bool
	}{
		{"cantidad cero siempre critical", 0, 10, analytics.SeverityCritical, true},
		{"cantidad cero con reorden cero", 0, 0, analytics.SeverityCritical, true},
		{"bajo la mitad del reorden", 4, 10, analytics.SeverityHigh, true},
		{"exactamente la mitad clasifica medium", 5, 10, analytics.SeverityMedium, true},
		{"entre mitad y reorden", 7, 10, analytics.SeverityMedium, true},
		{"exactamente en el reorden", 10, 10, analytics.SeverityMedium, true},
		{"uno sobre el reorden no alerta", 11, 10, "", false},
		{"muy por encima no alerta", 500, 10, "", false},
		{"mitad impar redondea hacia medium", 3, 5, analytics.SeverityMedium, true},
		{"bajo mitad impar", 2, 5, analytics.SeverityHigh, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sev, ok := analytics.ClassifySeverity(tc.quantity, tc.reorder)
			assert.Equal(t, tc.hasAlert, ok)
			assert.Equal(t, tc.want, sev)
		})
	}
}

// TestEvaluateLowStock_EscenarioReferencia A (qty 5, reorden 10) → medium;
// B (qty 20, reorden 5) → sin alerta.
func TestEvaluateLowStock_EscenarioReferencia(t *testing.T) {
	alerts := analytics.EvaluateLowStock(sampleItems())

	require.Len(t, alerts, 1)
	assert.Equal(t, "item-a", alerts[0].ItemID)
	assert.Equal(t, analytics.SeverityMedium, alerts[0].Severity)
	assert.Equal(t, int64(5), alerts[0].Quantity)
	assert.Equal(t, int64(10), alerts[0].ReorderLevel)
}

// TestEvaluateLowStock_UnaAlertaPorItem el motor emite cero o una alerta por
// ítem por pasada; nunca duplica dentro de la misma evaluación.
func TestEvaluateLowStock_UnaAlertaPorItem(t *testing.T) {
	items := []analytics.Item{
		{ID: "a", Quantity: 0, ReorderLevel: 3},
		{ID: "b", Quantity: 1, ReorderLevel: 10},
		{ID: "c", Quantity: 99, ReorderLevel: 10},
	}
	alerts := analytics.EvaluateLowStock(items)

	require.Len(t, alerts, 2)
	seen := map[string]analytics.Severity{}
	for _, a := range alerts {
		_, dup := seen[a.ItemID]
		require.False(t, dup, "no debe haber dos alertas para el mismo ítem")
		seen[a.ItemID] = a.Severity
	}
	assert.Equal(t, analytics.SeverityCritical, seen["a"])
	assert.Equal(t, analytics.SeverityHigh, seen["b"])
}
