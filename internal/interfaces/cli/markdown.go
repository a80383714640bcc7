package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/pkg/format"
)

var kindLabels = map[string]string{
	engine.LineSale:     "Venta",
	engine.LinePurchase: "Compra",
	engine.LinePayment:  "Pago a cuenta",
}

// SummaryMarkdown stock y caja.
func SummaryMarkdown(s *dto.SummaryResponse, f dto.MovementFilterRequest) string {
	var b strings.Builder
	b.WriteString("# Resumen\n\n")
	if filters := describeFilter(f); filters != "" {
		fmt.Fprintf(&b, "_Filtros: %s_\n\n", filters)
	}
	b.WriteString("| Concepto | Valor |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Stock (unidades) | %d |\n", s.StockUnits)
	fmt.Fprintf(&b, "| Stock (peso) | %s |\n", format.Kg(s.StockWeightKg))
	fmt.Fprintf(&b, "| A pagar (impago) | %s |\n", format.Money(s.PayableUnpaid))
	fmt.Fprintf(&b, "| A cobrar (impago) | %s |\n", format.Money(s.ReceivableUnpaid))
	fmt.Fprintf(&b, "| Cobrado | %s |\n", format.Money(s.Collected))
	fmt.Fprintf(&b, "| Pagado | %s |\n", format.Money(s.PaidOut))
	fmt.Fprintf(&b, "| Costo promedio por kg | %s |\n", format.Money(s.AvgCostPerKg))
	fmt.Fprintf(&b, "| **Caja esperada** | **%s** |\n", format.Money(s.ExpectedCash))
	return b.String()
}

func describeFilter(f dto.MovementFilterRequest) string {
	var parts []string
	if f.PaymentStatus != "" {
		parts = append(parts, "estado "+f.PaymentStatus)
	}
	if f.Product != "" {
		parts = append(parts, "producto "+f.Product)
	}
	if f.Counterparty != "" {
		parts = append(parts, "contraparte "+f.Counterparty)
	}
	return strings.Join(parts, ", ")
}

// BalanceMarkdown saldo de una contraparte.
func BalanceMarkdown(b *dto.EntityBalanceResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Saldo de %s\n\n", escape(b.Name))
	fmt.Fprintf(&sb, "%d movimientos, %d pagos a cuenta.\n\n", b.Movements, b.Payments)
	sb.WriteString("| Concepto | Monto |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Comprado | %s |\n", format.Money(b.Purchased))
	fmt.Fprintf(&sb, "| Vendido | %s |\n", format.Money(b.Sold))
	fmt.Fprintf(&sb, "| Compras pagadas | %s |\n", format.Money(b.PaidPurchases))
	fmt.Fprintf(&sb, "| Ventas cobradas | %s |\n", format.Money(b.CollectedSales))
	fmt.Fprintf(&sb, "| A pagar (impago) | %s |\n", format.Money(b.PayableUnpaid))
	fmt.Fprintf(&sb, "| A cobrar (impago) | %s |\n", format.Money(b.ReceivableUnpaid))
	fmt.Fprintf(&sb, "| Saldo a cuenta | %s |\n", format.Money(b.AccountBalance))
	fmt.Fprintf(&sb, "| **Saldo final** | **%s** |\n", format.Money(b.FinalBalance))
	return sb.String()
}

// StatementMarkdown estado de cuenta, más nuevo primero.
func StatementMarkdown(st *ledger.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Estado de cuenta: %s\n\n", escape(st.Name))
	if len(st.Lines) == 0 {
		b.WriteString("Sin movimientos ni pagos registrados.\n")
		return b.String()
	}
	b.WriteString("| Fecha | Tipo | Detalle | Estado | Debe | Haber | Balance |\n")
	b.WriteString("|---|---|---|---|---:|---:|---:|\n")
	for _, l := range st.Lines {
		kind := kindLabels[l.Kind]
		if kind == "" {
			kind = l.Kind
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			l.Date.Local().Format(time.DateTime),
			kind,
			escape(l.Detail),
			l.Status,
			format.Number(l.Debit),
			format.Number(l.Credit),
			format.Number(l.Balance),
		)
	}
	fmt.Fprintf(&b, "\n**Saldo al cierre:** %s  \n", format.Money(engine.StatementTotal(st.Lines)))
	fmt.Fprintf(&b, "**Saldo final (impagos + a cuenta):** %s\n", format.Money(st.Balance.FinalBalance))
	return b.String()
}

// RollupMarkdown resumen de todas las contrapartes.
func RollupMarkdown(rows []engine.EntityBalance, totals engine.EntityBalance) string {
	var b strings.Builder
	b.WriteString("# Resumen de clientes\n\n")
	if len(rows) == 0 {
		b.WriteString("Sin contrapartes con movimientos.\n")
		return b.String()
	}
	b.WriteString("| Contraparte | A cobrar | A pagar | A cuenta | Saldo final |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escape(r.Name),
			format.Number(r.ReceivableUnpaid),
			format.Number(r.PayableUnpaid),
			format.Number(r.AccountBalance),
			format.Number(r.FinalBalance),
		)
	}
	fmt.Fprintf(&b, "| **TOTAL** | **%s** | **%s** | **%s** | **%s** |\n",
		format.Number(totals.ReceivableUnpaid),
		format.Number(totals.PayableUnpaid),
		format.Number(totals.AccountBalance),
		format.Number(totals.FinalBalance),
	)
	return b.String()
}

// escape evita que un "|" en nombres o detalles rompa la tabla.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
