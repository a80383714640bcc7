// Package export serializa estados de cuenta y resúmenes a XLSX y CSV.
package export

import (
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006 15:04"

var (
	statementHeader = []string{"Fecha", "Tipo", "Detalle", "Monto", "Estado", "Debe", "Haber", "Balance"}
	rollupHeader    = []string{
		"Cliente", "Total Compras", "Total Ventas", "A Pagar (Impago)", "A Cobrar (Impago)",
		"Saldo a Cuenta", "Balance Final",
	}
)

var kindLabels = map[string]string{
	engine.LineSale:     "Venta",
	engine.LinePurchase: "Compra",
	engine.LinePayment:  "Pago a cuenta",
}

func kindLabel(kind string) string {
	if l, ok := kindLabels[kind]; ok {
		return l
	}
	return kind
}

// statementCells fila de celdas: fecha y textos como string, montos como decimal.
func statementCells(l engine.StatementLine) []any {
	return []any{
		l.Date.Format(dateLayout),
		kindLabel(l.Kind),
		l.Detail,
		l.Amount.Round(2),
		l.Status,
		l.Debit.Round(2),
		l.Credit.Round(2),
		l.Balance.Round(2),
	}
}

func rollupCells(b engine.EntityBalance) []any {
	return []any{
		b.Name,
		b.Purchased.Round(2),
		b.Sold.Round(2),
		b.PayableUnpaid.Round(2),
		b.ReceivableUnpaid.Round(2),
		b.AccountBalance.Round(2),
		b.FinalBalance.Round(2),
	}
}

func statementTotalCells(st *ledger.Statement) []any {
	return []any{"", "", "Saldo final", "", "", "", "", engine.StatementTotal(st.Lines).Round(2)}
}

func rollupTotalCells(t engine.EntityBalance) []any {
	t.Name = "TOTAL"
	return rollupCells(t)
}

// spreadsheetValue decimal -> float64 para que la planilla lo trate como número.
func spreadsheetValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}

// textValue decimal -> texto con punto decimal.
func textValue(v any) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.StringFixed(2)
	case string:
		return x
	}
	return ""
}
