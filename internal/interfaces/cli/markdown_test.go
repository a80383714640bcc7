package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
)

func TestSummaryMarkdown_IncluyeFiltrosYCaja(t *testing.T) {
	md := SummaryMarkdown(&dto.SummaryResponse{
		StockUnits:   12,
		ExpectedCash: decimal.NewFromInt(12345),
	}, dto.MovementFilterRequest{PaymentStatus: "IMPAGO"})

	assert.Contains(t, md, "_Filtros: estado IMPAGO_")
	assert.Contains(t, md, "| Stock (unidades) | 12 |")
	assert.Contains(t, md, "**$ 12.345,00**")
}

func TestStatementMarkdown_SinLineas(t *testing.T) {
	md := StatementMarkdown(&ledger.Statement{Name: "Juan"})
	assert.Contains(t, md, "Estado de cuenta: Juan")
	assert.Contains(t, md, "Sin movimientos ni pagos registrados.")
}

func TestStatementMarkdown_EscapaBarras(t *testing.T) {
	md := StatementMarkdown(&ledger.Statement{
		Name: "A|B",
		Lines: []engine.StatementLine{{
			Date:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Kind:    engine.LinePayment,
			Detail:  "seña | enero",
			Credit:  decimal.NewFromInt(300),
			Balance: decimal.NewFromInt(300),
		}},
	})
	assert.Contains(t, md, `A\|B`)
	assert.Contains(t, md, `seña \| enero`)
	assert.Contains(t, md, "Pago a cuenta")
}

func TestRollupMarkdown_FilaTotal(t *testing.T) {
	rows := []engine.EntityBalance{
		{Name: "Juan", FinalBalance: decimal.NewFromInt(13000)},
		{Name: "Ana", FinalBalance: decimal.NewFromInt(-2000)},
	}
	md := RollupMarkdown(rows, engine.RollupTotals(rows))
	assert.Contains(t, md, "| Juan |")
	assert.Contains(t, md, "**TOTAL**")
	assert.Contains(t, md, "**11.000,00**")
}

func TestRollupMarkdown_Vacio(t *testing.T) {
	assert.Contains(t, RollupMarkdown(nil, engine.EntityBalance{}), "Sin contrapartes")
}
