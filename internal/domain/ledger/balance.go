package ledger

import (
	"sort"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EntityBalance saldo de una contraparte.
// FinalBalance > 0: la contraparte nos debe; < 0: le debemos; 0: saldado.
type EntityBalance struct {
	Name             string
	Purchased        decimal.Decimal // total de compras (IN), pagadas o no
	Sold             decimal.Decimal // total de ventas (OUT), pagadas o no
	PaidPurchases    decimal.Decimal
	CollectedSales   decimal.Decimal
	PayableUnpaid    decimal.Decimal
	ReceivableUnpaid decimal.Decimal
	AccountBalance   decimal.Decimal
	FinalBalance     decimal.Decimal
	Movements        int
	Payments         int
}

// AccountBalance suma INGRESO y resta EGRESO de los pagos a cuenta de name.
// Pagos de tipo desconocido se ignoran.
func AccountBalance(name string, payments []*entity.AccountPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p == nil || p.ClientName != name {
			continue
		}
		total = total.Add(signedAmount(p))
	}
	return total
}

func signedAmount(p *entity.AccountPayment) decimal.Decimal {
	switch entity.NormalizePaymentKind(p.Kind) {
	case entity.PaymentKindCredit:
		return p.Amount
	case entity.PaymentKindDebit:
		return p.Amount.Neg()
	}
	return decimal.Zero
}

// ComputeEntityBalance calcula saldo final = a cobrar impago − a pagar impago + saldo a cuenta.
func ComputeEntityBalance(name string, movements []*entity.Movement, payments []*entity.AccountPayment) EntityBalance {
	b := EntityBalance{
		Name:             name,
		Purchased:        decimal.Zero,
		Sold:             decimal.Zero,
		PaidPurchases:    decimal.Zero,
		CollectedSales:   decimal.Zero,
		PayableUnpaid:    decimal.Zero,
		ReceivableUnpaid: decimal.Zero,
	}
	for _, m := range movements {
		if m == nil || m.Counterparty != name {
			continue
		}
		b.Movements++
		unpaid := m.IsUnpaid()
		switch entity.NormalizeDirection(m.Direction) {
		case entity.DirectionIn:
			b.Purchased = b.Purchased.Add(m.TotalAmount)
			if unpaid {
				b.PayableUnpaid = b.PayableUnpaid.Add(m.TotalAmount)
			} else {
				b.PaidPurchases = b.PaidPurchases.Add(m.TotalAmount)
			}
		case entity.DirectionOut:
			b.Sold = b.Sold.Add(m.TotalAmount)
			if unpaid {
				b.ReceivableUnpaid = b.ReceivableUnpaid.Add(m.TotalAmount)
			} else {
				b.CollectedSales = b.CollectedSales.Add(m.TotalAmount)
			}
		}
	}
	for _, p := range payments {
		if p != nil && p.ClientName == name {
			b.Payments++
		}
	}
	b.AccountBalance = AccountBalance(name, payments)
	b.FinalBalance = b.ReceivableUnpaid.Sub(b.PayableUnpaid).Add(b.AccountBalance)
	return b
}

// AccountBalanceLine saldo a cuenta de un cliente.
type AccountBalanceLine struct {
	ClientName string
	Balance    decimal.Decimal
}

// AccountBalances saldos a cuenta distintos de cero, ordenados por nombre.
func AccountBalances(payments []*entity.AccountPayment) []AccountBalanceLine {
	totals := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p == nil {
			continue
		}
		cur, ok := totals[p.ClientName]
		if !ok {
			cur = decimal.Zero
		}
		totals[p.ClientName] = cur.Add(signedAmount(p))
	}
	out := make([]AccountBalanceLine, 0, len(totals))
	for name, bal := range totals {
		if bal.IsZero() {
			continue
		}
		out = append(out, AccountBalanceLine{ClientName: name, Balance: bal})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientName < out[j].ClientName })
	return out
}
