package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/infrastructure/export"
)

func statement() *ledger.Statement {
	at := time.Date(2024, 2, 3, 14, 5, 0, 0, time.UTC)
	movs := []*entity.Movement{{
		ID: "m1", CreatedAt: at, Direction: entity.DirectionOut, Product: "Sal", Counterparty: "Juan",
		Quantity: 2, WeightKg: decimal.NewFromInt(20), TotalAmount: decimal.NewFromInt(1000), PaymentStatus: entity.StatusUnpaid,
	}}
	pays := []*entity.AccountPayment{{
		ID: "p1", CreatedAt: at.Add(time.Hour), ClientName: "Juan", Amount: decimal.NewFromInt(300), Concept: "seña, efectivo", Kind: entity.PaymentKindCredit,
	}}
	return &ledger.Statement{
		Name:    "Juan",
		Lines:   engine.ComputeStatement("Juan", movs, pays),
		Balance: engine.ComputeEntityBalance("Juan", movs, pays),
	}
}

func TestCSV_EstadoDeCuenta(t *testing.T) {
	body, err := export.NewCSVExporter().RenderStatement(context.Background(), statement())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("\ufeff")))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, []byte("\ufeff")))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "encabezado + 2 líneas + saldo final")
	assert.Equal(t, []string{"Fecha", "Tipo", "Detalle", "Monto", "Estado", "Debe", "Haber", "Balance"}, records[0])
	assert.Equal(t, "Pago a cuenta", records[1][1])
	assert.Equal(t, "seña, efectivo", records[1][2], "las comas quedan entrecomilladas")
	assert.Equal(t, "1300.00", records[1][7])
	assert.Equal(t, "03/02/2024 14:05", records[2][0])
	assert.Equal(t, "1300.00", records[3][7])
}

func TestExcel_ResumenGeneral(t *testing.T) {
	rows := []engine.EntityBalance{
		{Name: "Juan", FinalBalance: decimal.NewFromInt(1300)},
		{Name: "Pedro", FinalBalance: decimal.NewFromInt(-400)},
	}
	body, err := export.NewExcelExporter().RenderRollup(context.Background(), rows, engine.RollupTotals(rows))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue("Resumen", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Cliente", v)
	v, _ = f.GetCellValue("Resumen", "A4")
	assert.Equal(t, "Juan", v)
	v, _ = f.GetCellValue("Resumen", "A6")
	assert.Equal(t, "TOTAL", v)
}
