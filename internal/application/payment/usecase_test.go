package payment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/payment"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
)

func TestCreate_Validaciones(t *testing.T) {
	uc := payment.NewPaymentUseCase(memory.NewAccountPaymentRepository())
	ctx := context.Background()

	_, err := uc.Create(ctx, "", dto.AccountPaymentRequest{ClientName: "Juan", Amount: decimal.Zero, Concept: "x", Kind: "INGRESO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto 0")
	_, err = uc.Create(ctx, "", dto.AccountPaymentRequest{ClientName: "Juan", Amount: decimal.NewFromInt(5), Concept: " ", Kind: "INGRESO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin concepto")
	_, err = uc.Create(ctx, "", dto.AccountPaymentRequest{ClientName: "Juan", Amount: decimal.NewFromInt(5), Concept: "x", Kind: "otro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")
}

func TestBalances(t *testing.T) {
	uc := payment.NewPaymentUseCase(memory.NewAccountPaymentRepository())
	ctx := context.Background()
	for _, in := range []dto.AccountPaymentRequest{
		{ClientName: "Juan", Amount: decimal.NewFromInt(300), Concept: "seña", Kind: "ingreso"},
		{ClientName: "Juan", Amount: decimal.NewFromInt(100), Concept: "uso", Kind: "egreso"},
		{ClientName: "Ana", Amount: decimal.NewFromInt(50), Concept: "seña", Kind: "ingreso"},
		{ClientName: "Ana", Amount: decimal.NewFromInt(50), Concept: "uso", Kind: "egreso"},
	} {
		_, err := uc.Create(ctx, "", in)
		require.NoError(t, err)
	}

	got, err := uc.Balances(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "Ana queda en cero")
	assert.Equal(t, "Juan", got[0].ClientName)
	assert.Equal(t, "200", got[0].Balance.String())

	list, err := uc.List(ctx, "Ana")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
