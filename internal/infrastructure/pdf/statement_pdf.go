// Package pdf genera el estado de cuenta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estado de cuenta + contraparte  │  Fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDOS: a cobrar / a pagar / a cuenta / saldo final         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Detalle | Monto | Estado | Debe | ... │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: saldo al cierre                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/report"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/pkg/format"
)

var _ report.StatementRenderer = (*StatementPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebit   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var kindLabels = map[string]string{
	engine.LineSale:     "Venta",
	engine.LinePurchase: "Compra",
	engine.LinePayment:  "Pago",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// StatementPDFGenerator implementa report.StatementRenderer con Maroto v2.
type StatementPDFGenerator struct {
	company string
	now     func() time.Time
}

// NewStatementPDFGenerator construye el generador. company aparece como autor del documento.
func NewStatementPDFGenerator(company string) *StatementPDFGenerator {
	return &StatementPDFGenerator{company: company, now: time.Now}
}

// RenderStatement genera el PDF y devuelve sus bytes.
func (g *StatementPDFGenerator) RenderStatement(_ context.Context, st *ledger.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Estado de cuenta - "+st.Name, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st.Name, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(balanceRow(st.Balance))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(st.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos ni pagos registrados.", props.Text{Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, l := range st.Lines {
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(format.Money(engine.StatementTotal(st.Lines))))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(name string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// balanceRow: cuatro recuadros con los saldos de la contraparte.
func balanceRow(b engine.EntityBalance) core.Row {
	box := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center, Color: c}),
		)
	}
	final := colorPrimary
	if b.FinalBalance.IsNegative() {
		final = colorDebit
	}
	return row.New(14).Add(
		box("A cobrar (impago)", format.Money(b.ReceivableUnpaid), nil),
		box("A pagar (impago)", format.Money(b.PayableUnpaid), nil),
		box("Saldo a cuenta", format.Money(b.AccountBalance), nil),
		box("Saldo final", format.Money(b.FinalBalance), final),
	)
}

// Anchos de columna: suman 12.
var tableCols = []struct {
	label string
	size  int
	align align.Type
}{
	{"Fecha", 2, align.Left},
	{"Tipo", 1, align.Left},
	{"Detalle", 3, align.Left},
	{"Monto", 1, align.Right},
	{"Estado", 1, align.Center},
	{"Debe", 1, align.Right},
	{"Haber", 1, align.Right},
	{"Balance", 2, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableCols))
	for _, c := range tableCols {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func lineRow(l engine.StatementLine) core.Row {
	kind := kindLabels[l.Kind]
	if kind == "" {
		kind = l.Kind
	}
	values := []string{
		l.Date.Format("02/01/2006 15:04"),
		kind,
		l.Detail,
		format.Number(l.Amount),
		l.Status,
		dashIfZero(l.Debit),
		dashIfZero(l.Credit),
		format.Number(l.Balance),
	}
	cols := make([]core.Col, 0, len(tableCols))
	for i, c := range tableCols {
		p := props.Text{Size: 7, Align: c.align, Top: 1, Left: 1, Right: 1}
		if i == len(tableCols)-1 && l.Balance.IsNegative() {
			p.Color = colorDebit
		}
		cols = append(cols, col.New(c.size).Add(text.New(values[i], p)))
	}
	return row.New(6).Add(cols...)
}

func footerRow(total string) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("Saldo al cierre:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(total, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func dashIfZero(v decimal.Decimal) string {
	if v.IsZero() {
		return "-"
	}
	return format.Number(v)
}
