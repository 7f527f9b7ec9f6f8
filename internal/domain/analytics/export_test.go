package analytics_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
)

// TestExportCSV_RoundTrip parsear el export con un parser CSV estándar debe
// reproducir exactamente las tuplas originales, incluso con una coma embebida
// en el nombre ("Widget, Deluxe").
func TestExportCSV_RoundTrip(t *testing.T) {
	items := []analytics.Item{
		{
			SKU: "WD-1", Name: "Widget, Deluxe", Quantity: 12, Unit: "pcs",
			UnitCost:     decimal.RequireFromString("2.50"),
			SellingPrice: decimal.RequireFromString("4.99"),
			Status:       "active",
		},
		{
			SKU: "QT-9", Name: `Tubo 1/2" acero`, Quantity: 0, Unit: "m",
			UnitCost:     decimal.RequireFromString("10.00"),
			SellingPrice: decimal.RequireFromString("15.00"),
			Status:       "out_of_stock",
		},
	}
	out, err := analytics.ExportCSV(items)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err, "el export debe ser CSV válido para un parser estándar")
	require.Len(t, records, 3, "cabecera + 2 filas")

	assert.Equal(t, []string{"SKU", "Name", "Quantity", "Unit", "Unit Cost", "Selling Price", "Status"}, records[0])
	assert.Equal(t, []string{"WD-1", "Widget, Deluxe", "12", "pcs", "2.50", "4.99", "active"}, records[1])
	assert.Equal(t, []string{"QT-9", `Tubo 1/2" acero`, "0", "m", "10.00", "15.00", "out_of_stock"}, records[2])
}

// TestExportCSV_RepresentacionDecimalFija los montos salen con dos decimales
// fijos: sin notación científica ni separadores de miles.
func TestExportCSV_RepresentacionDecimalFija(t *testing.T) {
	items := []analytics.Item{
		{
			SKU: "BIG", Name: "Lote industrial", Quantity: 1_000_000, Unit: "pcs",
			UnitCost:     decimal.RequireFromString("12345678.9"),
			SellingPrice: decimal.RequireFromString("0.005"),
			Status:       "active",
		},
	}
	out, err := analytics.ExportCSV(items)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "12345678.90", records[1][4])
	assert.Equal(t, "0.01", records[1][5], "StringFixed redondea a dos decimales")
	assert.Equal(t, "1000000", records[1][2])
	assert.NotContains(t, out, "e+", "sin notación científica")
}

// TestExportCSV_SnapshotVacio solo la cabecera.
func TestExportCSV_SnapshotVacio(t *testing.T) {
	out, err := analytics.ExportCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

// TestExportCSV_SaltoDeLineaEnNombre un salto de línea dentro del nombre queda
// correctamente entrecomillado y sobrevive el round-trip.
func TestExportCSV_SaltoDeLineaEnNombre(t *testing.T) {
	items := []analytics.Item{
		{
			SKU: "NL-1", Name: "Línea uno\nlínea dos", Quantity: 1, Unit: "pcs",
			UnitCost:     decimal.RequireFromString("1.00"),
			SellingPrice: decimal.RequireFromString("2.00"),
			Status:       "active",
		},
	}
	out, err := analytics.ExportCSV(items)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Línea uno\nlínea dos", records[1][1])
}
