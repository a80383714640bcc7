package ledger

import (
	"sort"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Counterparties nombres distintos presentes en movimientos o pagos, sin vacíos.
func Counterparties(movements []*entity.Movement, payments []*entity.AccountPayment) []string {
	seen := make(map[string]struct{})
	for _, m := range movements {
		if m != nil && m.Counterparty != "" {
			seen[m.Counterparty] = struct{}{}
		}
	}
	for _, p := range payments {
		if p != nil && p.ClientName != "" {
			seen[p.ClientName] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ComputeRollup saldo de cada contraparte, de mayor a menor saldo final; empate por nombre.
func ComputeRollup(movements []*entity.Movement, payments []*entity.AccountPayment) []EntityBalance {
	names := Counterparties(movements, payments)
	byName := groupMovements(movements)
	paysByName := groupPayments(payments)

	out := make([]EntityBalance, 0, len(names))
	for _, n := range names {
		out = append(out, ComputeEntityBalance(n, byName[n], paysByName[n]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].FinalBalance.Cmp(out[j].FinalBalance); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// RollupTotals suma las columnas del resumen general.
func RollupTotals(rows []EntityBalance) EntityBalance {
	t := EntityBalance{
		Purchased:        decimal.Zero,
		Sold:             decimal.Zero,
		PaidPurchases:    decimal.Zero,
		CollectedSales:   decimal.Zero,
		PayableUnpaid:    decimal.Zero,
		ReceivableUnpaid: decimal.Zero,
		AccountBalance:   decimal.Zero,
		FinalBalance:     decimal.Zero,
	}
	for _, r := range rows {
		t.Purchased = t.Purchased.Add(r.Purchased)
		t.Sold = t.Sold.Add(r.Sold)
		t.PaidPurchases = t.PaidPurchases.Add(r.PaidPurchases)
		t.CollectedSales = t.CollectedSales.Add(r.CollectedSales)
		t.PayableUnpaid = t.PayableUnpaid.Add(r.PayableUnpaid)
		t.ReceivableUnpaid = t.ReceivableUnpaid.Add(r.ReceivableUnpaid)
		t.AccountBalance = t.AccountBalance.Add(r.AccountBalance)
		t.FinalBalance = t.FinalBalance.Add(r.FinalBalance)
		t.Movements += r.Movements
		t.Payments += r.Payments
	}
	return t
}

func groupMovements(movements []*entity.Movement) map[string][]*entity.Movement {
	g := make(map[string][]*entity.Movement)
	for _, m := range movements {
		if m != nil {
			g[m.Counterparty] = append(g[m.Counterparty], m)
		}
	}
	return g
}

func groupPayments(payments []*entity.AccountPayment) map[string][]*entity.AccountPayment {
	g := make(map[string][]*entity.AccountPayment)
	for _, p := range payments {
		if p != nil {
			g[p.ClientName] = append(g[p.ClientName], p)
		}
	}
	return g
}
