package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mov(id, dir, name string, qty int, kg, total, status string, at time.Time) *entity.Movement {
	return &entity.Movement{
		ID:            id,
		CreatedAt:     at,
		Direction:     dir,
		Product:       entity.ProductCueros,
		Counterparty:  name,
		Quantity:      qty,
		WeightKg:      d(kg),
		TotalAmount:   d(total),
		PaymentStatus: status,
	}
}

func pay(id, name, kind, amount string, at time.Time) *entity.AccountPayment {
	return &entity.AccountPayment{ID: id, CreatedAt: at, ClientName: name, Kind: kind, Amount: d(amount), Concept: "pago " + id}
}

func eq(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Valuate
// ──────────────────────────────────────────────────────────────────────────────

func TestValuate_CompraConIVAGeneral(t *testing.T) {
	v := ledger.Valuate(10, d("100"), d("50"), ledger.TaxRateGeneral)
	eq(t, "5000", v.Net, "neto")
	eq(t, "6050", v.Total, "total")
	eq(t, "500", v.AvgPerUnit, "promedio")
}

func TestValuate_CantidadCeroPromedioCero(t *testing.T) {
	v := ledger.Valuate(0, d("20"), d("10"), ledger.TaxRateReduced)
	eq(t, "200", v.Net, "neto")
	eq(t, "221", v.Total, "total")
	assert.True(t, v.AvgPerUnit.IsZero(), "sin unidades el promedio es 0")
}

func TestIsAllowedTaxRate(t *testing.T) {
	assert.True(t, ledger.IsAllowedTaxRate(d("0")))
	assert.True(t, ledger.IsAllowedTaxRate(d("0.105")))
	assert.True(t, ledger.IsAllowedTaxRate(d("0.210")))
	assert.False(t, ledger.IsAllowedTaxRate(d("0.27")))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeSummary
// ──────────────────────────────────────────────────────────────────────────────

func summarySnapshot() []*entity.Movement {
	return []*entity.Movement{
		mov("1", entity.DirectionIn, "Pedro", 10, "100", "1000", entity.StatusPaid, base),
		mov("2", entity.DirectionIn, "Pedro", 5, "50", "500", entity.StatusUnpaid, base.Add(time.Hour)),
		mov("3", entity.DirectionIn, "Ana", 2, "20", "200", "", base.Add(2*time.Hour)),
		mov("4", entity.DirectionOut, "Juan", 4, "40", "800", entity.StatusUnpaid, base.Add(3*time.Hour)),
		mov("5", entity.DirectionOut, "Juan", 1, "10", "300", entity.StatusPaid, base.Add(4*time.Hour)),
	}
}

func TestComputeSummary_StockYCaja(t *testing.T) {
	s := ledger.ComputeSummary(summarySnapshot(), ledger.Filter{})
	assert.Equal(t, int64(12), s.StockUnits, "10+5+2-4-1")
	eq(t, "120", s.StockWeightKg, "kg")
	eq(t, "500", s.PayableUnpaid, "a pagar")
	eq(t, "800", s.ReceivableUnpaid, "a cobrar")
	eq(t, "300", s.Collected, "cobrado")
	eq(t, "1200", s.PaidOut, "pagado; estado vacío cuenta como pagado")
	eq(t, "-900", s.ExpectedCash, "caja esperada")
}

func TestComputeSummary_FiltrosCombinados(t *testing.T) {
	s := ledger.ComputeSummary(summarySnapshot(), ledger.Filter{PaymentStatus: "impago", Counterparty: "Pedro"})
	assert.Equal(t, int64(5), s.StockUnits)
	eq(t, "500", s.PayableUnpaid, "a pagar")
	assert.True(t, s.PaidOut.IsZero())

	s = ledger.ComputeSummary(summarySnapshot(), ledger.Filter{Product: "sal"})
	assert.Equal(t, int64(0), s.StockUnits, "no hay movimientos de sal")
}

func TestComputeSummary_SnapshotVacio(t *testing.T) {
	s := ledger.ComputeSummary(nil, ledger.Filter{})
	assert.Equal(t, int64(0), s.StockUnits)
	for _, v := range []decimal.Decimal{s.StockWeightKg, s.PayableUnpaid, s.ReceivableUnpaid, s.Collected, s.PaidOut, s.ExpectedCash} {
		assert.True(t, v.IsZero())
	}
}

func TestComputeSummary_Idempotente(t *testing.T) {
	snap := summarySnapshot()
	a := ledger.ComputeSummary(snap, ledger.Filter{})
	b := ledger.ComputeSummary(snap, ledger.Filter{})
	assert.Equal(t, a, b)
}

func TestComputeSummary_RegistroLegadoSinCampos(t *testing.T) {
	legacy := &entity.Movement{ID: "x", Direction: "Egreso (Venta)", Counterparty: "Viejo", Quantity: 3}
	s := ledger.ComputeSummary([]*entity.Movement{legacy, nil}, ledger.Filter{})
	assert.Equal(t, int64(-3), s.StockUnits)
	assert.True(t, s.Collected.IsZero(), "total ausente cuenta como 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeEntityBalance
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeEntityBalance_JuanVentaImpagaYPagoACuenta(t *testing.T) {
	movs := []*entity.Movement{mov("1", entity.DirectionOut, "Juan", 1, "10", "1000", entity.StatusUnpaid, base)}
	pays := []*entity.AccountPayment{pay("p1", "Juan", entity.PaymentKindCredit, "300", base.Add(time.Hour))}

	b := ledger.ComputeEntityBalance("Juan", movs, pays)
	eq(t, "1000", b.ReceivableUnpaid, "a cobrar")
	assert.True(t, b.PayableUnpaid.IsZero())
	eq(t, "300", b.AccountBalance, "a cuenta")
	eq(t, "1300", b.FinalBalance, "saldo final")
}

func TestComputeEntityBalance_InvarianteAlOrden(t *testing.T) {
	movs := summarySnapshot()
	pays := []*entity.AccountPayment{
		pay("p1", "Juan", "ingreso", "100.10", base),
		pay("p2", "Juan", "egreso", "40.05", base.Add(time.Minute)),
	}
	a := ledger.ComputeEntityBalance("Juan", movs, pays)

	rev := make([]*entity.Movement, len(movs))
	for i, m := range movs {
		rev[len(movs)-1-i] = m
	}
	b := ledger.ComputeEntityBalance("Juan", rev, []*entity.AccountPayment{pays[1], pays[0]})

	eq(t, a.FinalBalance.String(), b.FinalBalance, "saldo final")
	eq(t, "60.05", a.AccountBalance, "a cuenta exacto")
}

func TestComputeEntityBalance_ClienteEliminadoConservaHistoria(t *testing.T) {
	// No hay registro de cliente: la agregación es por nombre.
	movs := []*entity.Movement{mov("1", entity.DirectionIn, "Borrado", 1, "1", "250", entity.StatusUnpaid, base)}
	b := ledger.ComputeEntityBalance("Borrado", movs, nil)
	eq(t, "-250", b.FinalBalance, "le debemos al proveedor")
	assert.Equal(t, 1, b.Movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStatement
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStatement_OrdenYSaldoAcumulado(t *testing.T) {
	movs := []*entity.Movement{
		mov("m2", entity.DirectionOut, "Juan", 1, "10", "1000", entity.StatusUnpaid, base.Add(2*time.Hour)),
		mov("m1", entity.DirectionIn, "Juan", 1, "10", "400", entity.StatusUnpaid, base),
		mov("m0", entity.DirectionOut, "Juan", 1, "10", "999", entity.StatusPaid, base.Add(time.Hour)),
		mov("otro", entity.DirectionOut, "Ana", 1, "10", "5", entity.StatusUnpaid, base),
	}
	pays := []*entity.AccountPayment{
		pay("p1", "Juan", entity.PaymentKindCredit, "300", base.Add(3*time.Hour)),
		pay("p0", "Juan", entity.PaymentKindDebit, "50", base.Add(30*time.Minute)),
	}

	lines := ledger.ComputeStatement("Juan", movs, pays)
	require.Len(t, lines, 5)

	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.SourceID
	}
	assert.Equal(t, []string{"p1", "m2", "m0", "p0", "m1"}, ids, "de más nuevo a más viejo")

	// Acumulado desde el más viejo: -400, -450, -450, 550, 850
	eq(t, "-400", lines[4].Balance, "m1")
	eq(t, "-450", lines[3].Balance, "p0")
	eq(t, "-450", lines[2].Balance, "m0 pagada no mueve el saldo")
	eq(t, "550", lines[1].Balance, "m2")
	eq(t, "850", lines[0].Balance, "p1")
	eq(t, "850", ledger.StatementTotal(lines), "total al pie")

	assert.Equal(t, ledger.LinePurchase, lines[4].Kind)
	eq(t, "400", lines[4].Debit, "compra impaga al debe")
	assert.Equal(t, ledger.LinePayment, lines[3].Kind)
	eq(t, "50", lines[3].Debit, "egreso al debe")
}

func TestComputeStatement_NoSeConfundeConSaldoDeEntidad(t *testing.T) {
	movs := []*entity.Movement{mov("m1", entity.DirectionOut, "Juan", 1, "10", "1000", entity.StatusUnpaid, base)}
	pays := []*entity.AccountPayment{pay("p1", "Juan", entity.PaymentKindDebit, "200", base.Add(time.Hour))}

	lines := ledger.ComputeStatement("Juan", movs, pays)
	bal := ledger.ComputeEntityBalance("Juan", movs, pays)

	eq(t, "800", ledger.StatementTotal(lines), "haber 1000 menos debe 200")
	eq(t, "800", bal.FinalBalance, "1000 - 0 + (-200)")

	// Una venta pagada aparece en el estado de cuenta pero no cambia ninguno de los dos saldos.
	movs = append(movs, mov("m2", entity.DirectionOut, "Juan", 1, "10", "700", entity.StatusPaid, base.Add(2*time.Hour)))
	lines = ledger.ComputeStatement("Juan", movs, pays)
	require.Len(t, lines, 3)
	eq(t, "700", lines[0].Amount, "monto informativo")
	eq(t, "800", lines[0].Balance, "saldo sin cambio")
}

func TestComputeStatement_EmpateMovimientosAntesQuePagos(t *testing.T) {
	movs := []*entity.Movement{mov("m", entity.DirectionOut, "Juan", 1, "1", "10", entity.StatusUnpaid, base)}
	pays := []*entity.AccountPayment{pay("p", "Juan", entity.PaymentKindCredit, "5", base)}

	lines := ledger.ComputeStatement("Juan", movs, pays)
	require.Len(t, lines, 2)
	assert.Equal(t, "m", lines[0].SourceID)
	assert.Equal(t, "p", lines[1].SourceID)
	eq(t, "15", lines[0].Balance, "la línea superior lleva el total")
}

func TestComputeStatement_Vacio(t *testing.T) {
	lines := ledger.ComputeStatement("Nadie", nil, nil)
	assert.Empty(t, lines)
	assert.True(t, ledger.StatementTotal(lines).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeRollup / AccountBalances
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeRollup_OrdenPorSaldoFinal(t *testing.T) {
	movs := []*entity.Movement{
		mov("1", entity.DirectionOut, "Juan", 1, "1", "1000", entity.StatusUnpaid, base),
		mov("2", entity.DirectionIn, "Pedro", 1, "1", "400", entity.StatusUnpaid, base),
		mov("3", entity.DirectionIn, "", 1, "1", "1", entity.StatusUnpaid, base),
	}
	pays := []*entity.AccountPayment{pay("p", "Solo Pagos", entity.PaymentKindCredit, "50", base)}

	rows := ledger.ComputeRollup(movs, pays)
	require.Len(t, rows, 3, "nombres vacíos no forman fila")
	assert.Equal(t, "Juan", rows[0].Name)
	assert.Equal(t, "Solo Pagos", rows[1].Name)
	assert.Equal(t, "Pedro", rows[2].Name)
	eq(t, "-400", rows[2].FinalBalance, "proveedor")

	tot := ledger.RollupTotals(rows)
	eq(t, "650", tot.FinalBalance, "1000 + 50 - 400")
	eq(t, "400", tot.Purchased, "compras")
}

func TestAccountBalances_SoloDistintosDeCero(t *testing.T) {
	pays := []*entity.AccountPayment{
		pay("1", "Zoe", entity.PaymentKindCredit, "100", base),
		pay("2", "Zoe", entity.PaymentKindDebit, "100", base),
		pay("3", "Ana", entity.PaymentKindCredit, "30", base),
		pay("4", "Beto", entity.PaymentKindDebit, "10", base),
	}
	got := ledger.AccountBalances(pays)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].ClientName)
	eq(t, "30", got[0].Balance, "Ana")
	assert.Equal(t, "Beto", got[1].ClientName)
	eq(t, "-10", got[1].Balance, "Beto")
}
