package analytics

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// csvHeader orden fijo de columnas del export de inventario.
var csvHeader = []string{"SKU", "Name", "Quantity", "Unit", "Unit Cost", "Selling Price", "Status"}

// ExportCSV serializa el snapshot como documento CSV: cabecera fija más una fila
// por ítem. El escapado de comas, comillas y saltos de línea sigue RFC 4180
// (lo maneja encoding/csv), de modo que nombres como `Widget, Deluxe` sobreviven
// el round-trip con cualquier parser estándar.
//
// Los montos se serializan con dos decimales fijos, sin notación científica ni
// separadores de miles dependientes de locale. Nombrar el archivo y disparar la
// descarga es asunto de la capa de presentación.
func ExportCSV(items []Item) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, it := range items {
		record := []string{
			it.SKU,
			it.Name,
			strconv.FormatInt(it.Quantity, 10),
			it.Unit,
			it.UnitCost.StringFixed(2),
			it.SellingPrice.StringFixed(2),
			it.Status,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("csv: escribir fila %s: %w", it.SKU, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}
	return sb.String(), nil
}
