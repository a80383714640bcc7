package ledger

import (
	"sort"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// WeightedAverageCost costo promedio ponderado tras una entrada.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stock, cost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	sum := stock.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return stock.Mul(cost).Add(qtyIn.Mul(costIn)).Div(sum)
}

// AverageCostPerKg costo promedio por kg del stock filtrado, en orden cronológico.
// Los egresos bajan el stock sin mover el costo; con stock en cero el costo se reinicia.
func AverageCostPerKg(movements []*entity.Movement, f Filter) decimal.Decimal {
	list := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m != nil && f.Match(m) {
			list = append(list, m)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })

	stock, cost := decimal.Zero, decimal.Zero
	for _, m := range list {
		switch entity.NormalizeDirection(m.Direction) {
		case entity.DirectionIn:
			cost = WeightedAverageCost(stock, cost, m.WeightKg, m.UnitPrice)
			stock = stock.Add(m.WeightKg)
		case entity.DirectionOut:
			stock = stock.Sub(m.WeightKg)
			if stock.LessThanOrEqual(decimal.Zero) {
				stock, cost = decimal.Zero, decimal.Zero
			}
		}
	}
	return cost
}
