package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Tipos de línea del estado de cuenta.
const (
	LineSale     = "VENTA"
	LinePurchase = "COMPRA"
	LinePayment  = "PAGO_CUENTA"
)

// StatementLine línea del estado de cuenta.
// Balance es el acumulado de (Credit − Debit) desde la línea más antigua hasta esta.
type StatementLine struct {
	Date     time.Time
	Kind     string
	SourceID string
	Detail   string
	Amount   decimal.Decimal
	Status   string
	Debit    decimal.Decimal // debe
	Credit   decimal.Decimal // haber
	Balance  decimal.Decimal
}

// ComputeStatement arma el estado de cuenta de name, ordenado de más nuevo a más viejo.
//
// Compra impaga va al Debe, venta impaga al Haber; pagos INGRESO al Haber y EGRESO al Debe.
// Con igual fecha se conserva el orden de origen: movimientos (en el orden recibido) y luego pagos.
// Movimientos con dirección desconocida se omiten.
func ComputeStatement(name string, movements []*entity.Movement, payments []*entity.AccountPayment) []StatementLine {
	lines := make([]StatementLine, 0)
	for _, m := range movements {
		if m == nil || m.Counterparty != name {
			continue
		}
		line := StatementLine{
			Date:     m.CreatedAt,
			SourceID: m.ID,
			Detail:   fmt.Sprintf("%s - %d u. - %s kg", m.Product, m.Quantity, m.WeightKg.String()),
			Amount:   m.TotalAmount,
			Status:   entity.NormalizePaymentStatus(m.PaymentStatus),
			Debit:    decimal.Zero,
			Credit:   decimal.Zero,
		}
		unpaid := m.IsUnpaid()
		switch entity.NormalizeDirection(m.Direction) {
		case entity.DirectionIn:
			line.Kind = LinePurchase
			if unpaid {
				line.Debit = m.TotalAmount
			}
		case entity.DirectionOut:
			line.Kind = LineSale
			if unpaid {
				line.Credit = m.TotalAmount
			}
		default:
			continue
		}
		lines = append(lines, line)
	}
	for _, p := range payments {
		if p == nil || p.ClientName != name {
			continue
		}
		kind := entity.NormalizePaymentKind(p.Kind)
		line := StatementLine{
			Date:     p.CreatedAt,
			Kind:     LinePayment,
			SourceID: p.ID,
			Detail:   p.Concept,
			Amount:   p.Amount,
			Status:   kind,
			Debit:    decimal.Zero,
			Credit:   decimal.Zero,
		}
		switch kind {
		case entity.PaymentKindCredit:
			line.Credit = p.Amount
		case entity.PaymentKindDebit:
			line.Debit = p.Amount
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.After(lines[j].Date)
	})

	running := decimal.Zero
	for i := len(lines) - 1; i >= 0; i-- {
		running = running.Add(lines[i].Credit.Sub(lines[i].Debit))
		lines[i].Balance = running
	}
	return lines
}

// StatementTotal saldo al pie del estado de cuenta (Balance de la línea más nueva).
func StatementTotal(lines []StatementLine) decimal.Decimal {
	if len(lines) == 0 {
		return decimal.Zero
	}
	return lines[0].Balance
}
