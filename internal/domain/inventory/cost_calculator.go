package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula el nuevo costo unitario promedio ponderado tras
// una entrada de stock (servicio de dominio).
// NuevoCosto = ((StockActual × CostoActual) + (CantEntrada × CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(currentQty int64, currentCost decimal.Decimal, inboundQty int64, inboundCost decimal.Decimal) decimal.Decimal {
	total := currentQty + inboundQty
	if total <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(currentQty).Mul(currentCost).
		Add(decimal.NewFromInt(inboundQty).Mul(inboundCost))
	return num.Div(decimal.NewFromInt(total)).Round(4)
}
