package ledger

import (
	"strings"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Filter filtros opcionales del resumen. Campo vacío = sin filtro; se combinan con AND.
type Filter struct {
	PaymentStatus string
	Product       string
	Counterparty  string
}

// Match indica si el movimiento pasa todos los filtros activos.
func (f Filter) Match(m *entity.Movement) bool {
	if f.PaymentStatus != "" && entity.NormalizePaymentStatus(f.PaymentStatus) != entity.NormalizePaymentStatus(m.PaymentStatus) {
		return false
	}
	if f.Product != "" && !strings.EqualFold(f.Product, m.Product) {
		return false
	}
	if f.Counterparty != "" && f.Counterparty != m.Counterparty {
		return false
	}
	return true
}

// Summary stock y flujo de caja agregados.
type Summary struct {
	StockUnits       int64
	StockWeightKg    decimal.Decimal
	PayableUnpaid    decimal.Decimal // adeudado a proveedores
	ReceivableUnpaid decimal.Decimal // adeudado por clientes
	Collected        decimal.Decimal
	PaidOut          decimal.Decimal
	ExpectedCash     decimal.Decimal
	AvgCostPerKg     decimal.Decimal // costo promedio ponderado del stock
}

// ComputeSummary agrega los movimientos que pasan el filtro.
// Movimientos con dirección desconocida no suman.
func ComputeSummary(movements []*entity.Movement, f Filter) Summary {
	s := Summary{
		StockWeightKg:    decimal.Zero,
		PayableUnpaid:    decimal.Zero,
		ReceivableUnpaid: decimal.Zero,
		Collected:        decimal.Zero,
		PaidOut:          decimal.Zero,
	}
	for _, m := range movements {
		if m == nil || !f.Match(m) {
			continue
		}
		unpaid := m.IsUnpaid()
		switch entity.NormalizeDirection(m.Direction) {
		case entity.DirectionIn:
			s.StockUnits += int64(m.Quantity)
			s.StockWeightKg = s.StockWeightKg.Add(m.WeightKg)
			if unpaid {
				s.PayableUnpaid = s.PayableUnpaid.Add(m.TotalAmount)
			} else {
				s.PaidOut = s.PaidOut.Add(m.TotalAmount)
			}
		case entity.DirectionOut:
			s.StockUnits -= int64(m.Quantity)
			s.StockWeightKg = s.StockWeightKg.Sub(m.WeightKg)
			if unpaid {
				s.ReceivableUnpaid = s.ReceivableUnpaid.Add(m.TotalAmount)
			} else {
				s.Collected = s.Collected.Add(m.TotalAmount)
			}
		}
	}
	s.ExpectedCash = s.Collected.Sub(s.PaidOut)
	s.AvgCostPerKg = AverageCostPerKg(movements, f)
	return s
}
