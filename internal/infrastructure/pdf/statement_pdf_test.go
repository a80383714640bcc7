package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/infrastructure/pdf"
)

func TestRenderStatement_GeneraPDF(t *testing.T) {
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	st := &ledger.Statement{
		Name: "Juan",
		Lines: []engine.StatementLine{
			{Date: at, Kind: engine.LineSale, Detail: "cueros - 10 u. - 120 kg", Amount: decimal.NewFromInt(1000), Status: "PAGADO", Credit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000)},
		},
		Balance: engine.EntityBalance{Name: "Juan", FinalBalance: decimal.NewFromInt(1000)},
	}

	out, err := pdf.NewStatementPDFGenerator("Cueros").RenderStatement(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderStatement_SinLineas(t *testing.T) {
	out, err := pdf.NewStatementPDFGenerator("Cueros").RenderStatement(context.Background(), &ledger.Statement{Name: "Nadie"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
