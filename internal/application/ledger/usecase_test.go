package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/application/client"
	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/movement"
	"github.com/jhoicas/cueros-api/internal/application/payment"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	repos    repository.Set
	movs     *movement.MovementUseCase
	pays     *payment.PaymentUseCase
	clients  *client.ClientUseCase
	ledgerUC *ledger.LedgerUseCase
}

func newFixture() *fixture {
	repos := memory.NewRepositories()
	return &fixture{
		repos:    repos,
		movs:     movement.NewMovementUseCase(repos.Movements),
		pays:     payment.NewPaymentUseCase(repos.Payments),
		clients:  client.NewClientUseCase(repos.Clients),
		ledgerUC: ledger.NewLedgerUseCase(repos.Movements, repos.Payments),
	}
}

func (f *fixture) sale(t *testing.T, name, total, status string) {
	t.Helper()
	_, err := f.movs.Create(context.Background(), "", dto.MovementRequest{
		Direction: entity.DirectionOut, Product: entity.ProductSal, Counterparty: name,
		Quantity: 1, WeightKg: d(total), UnitPrice: d("1"), TaxRate: d("0"), PaymentStatus: status,
	})
	require.NoError(t, err)
}

func TestEntityBalance_JuanConPagoACuenta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.sale(t, "Juan", "1000", entity.StatusUnpaid)
	_, err := f.pays.Create(ctx, "", dto.AccountPaymentRequest{ClientName: "Juan", Amount: d("300"), Concept: "seña", Kind: "ingreso"})
	require.NoError(t, err)

	b, err := f.ledgerUC.EntityBalance(ctx, "Juan")
	require.NoError(t, err)
	assert.Equal(t, "1300", b.FinalBalance.String())
	assert.Equal(t, "300", b.AccountBalance.String())
}

func TestEntityBalance_ClienteEliminadoConservaHistoria(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.clients.Create(ctx, dto.ClientRequest{Name: "Juan"})
	require.NoError(t, err)
	f.sale(t, "Juan", "500", entity.StatusUnpaid)

	require.NoError(t, f.clients.Delete(ctx, c.ID))

	n, _ := f.repos.Movements.Count(ctx)
	assert.Equal(t, int64(1), n, "borrar el cliente no borra sus movimientos")
	b, err := f.ledgerUC.EntityBalance(ctx, "Juan")
	require.NoError(t, err)
	assert.Equal(t, "500", b.FinalBalance.String())
}

func TestSummary_FiltroPorEstado(t *testing.T) {
	f := newFixture()
	f.sale(t, "Juan", "100", entity.StatusUnpaid)
	f.sale(t, "Ana", "40", entity.StatusPaid)

	all, err := f.ledgerUC.Summary(context.Background(), dto.MovementFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), all.StockUnits)
	assert.Equal(t, "40", all.ExpectedCash.String())

	unpaid, err := f.ledgerUC.Summary(context.Background(), dto.MovementFilterRequest{PaymentStatus: "IMPAGO"})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), unpaid.StockUnits)
	assert.Equal(t, "100", unpaid.ReceivableUnpaid.String())
}

func TestStatementYRollup(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.sale(t, "Juan", "1000", entity.StatusUnpaid)
	f.sale(t, "Ana", "10", entity.StatusUnpaid)

	st, err := f.ledgerUC.Statement(ctx, "Juan")
	require.NoError(t, err)
	require.Len(t, st.Lines, 1)
	assert.Equal(t, "1000", st.Total.String())

	r, err := f.ledgerUC.Rollup(ctx)
	require.NoError(t, err)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Juan", r.Rows[0].Name)
	assert.Equal(t, "1010", r.Totals.FinalBalance.String())
}

type failingPayments struct{ repository.AccountPaymentRepository }

func (failingPayments) List(context.Context) ([]*entity.AccountPayment, error) {
	return nil, errors.New("sin conexión")
}

func TestRollup_PropagaErrorDelStore(t *testing.T) {
	repos := memory.NewRepositories()
	uc := ledger.NewLedgerUseCase(repos.Movements, failingPayments{repos.Payments})
	_, err := uc.Rollup(context.Background())
	assert.Error(t, err)
}
