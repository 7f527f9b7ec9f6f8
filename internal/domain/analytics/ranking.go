package analytics

import (
	"fmt"
	"sort"

	"github.com/jhoicas/stocklens-api/internal/domain"
)

// DefaultTopN número de ítems en el widget "Top Items by Stock" del dashboard.
const DefaultTopN = 5

// TopByQuantity devuelve los n ítems con mayor cantidad en stock, ordenados por
// cantidad descendente con desempate por SKU ascendente (orden total, necesario
// para una UI estable y tests reproducibles).
//
// n = 0 devuelve una secuencia vacía; n mayor que el snapshot devuelve todos los
// ítems sin relleno. n negativo es un argumento inválido y falla de inmediato.
// La entrada no se muta: se ordena sobre una copia.
func TopByQuantity(items []Item, n int) ([]Item, error) {
	if n < 0 {
		return nil, fmt.Errorf("top-n: n=%d: %w", n, domain.ErrInvalidInput)
	}
	ranked := make([]Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].SKU < ranked[j].SKU
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
