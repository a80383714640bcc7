package movement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/movement"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() dto.MovementRequest {
	return dto.MovementRequest{
		Direction:     "Ingreso (Compra)",
		Product:       entity.ProductCueros,
		Counterparty:  "  Pedro ",
		Quantity:      10,
		WeightKg:      d("100"),
		UnitPrice:     d("50"),
		TaxRate:       d("0.21"),
		PaymentStatus: "Impago",
	}
}

func TestCreate_CalculaTotalesYNormaliza(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc := movement.NewMovementUseCase(memory.NewMovementRepository()).WithClock(func() time.Time { return at })

	out, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.DirectionIn, out.Direction)
	assert.Equal(t, "Pedro", out.Counterparty)
	assert.Equal(t, entity.StatusUnpaid, out.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCash, out.PaymentMethod, "modo de pago por defecto")
	assert.True(t, d("5000").Equal(out.NetAmount))
	assert.True(t, d("6050").Equal(out.TotalAmount))
	assert.Equal(t, at, out.CreatedAt)
	assert.Equal(t, "user-1", out.CreatedBy)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := movement.NewMovementUseCase(memory.NewMovementRepository())
	cases := map[string]func(r *dto.MovementRequest){
		"sin contraparte":    func(r *dto.MovementRequest) { r.Counterparty = " " },
		"cantidad cero":      func(r *dto.MovementRequest) { r.Quantity = 0 },
		"peso negativo":      func(r *dto.MovementRequest) { r.WeightKg = d("-1") },
		"iva no admitido":    func(r *dto.MovementRequest) { r.TaxRate = d("0.19") },
		"dirección inválida": func(r *dto.MovementRequest) { r.Direction = "traslado" },
		"modo de pago":       func(r *dto.MovementRequest) { r.PaymentMethod = "bitcoin" },
		"estado inválido":    func(r *dto.MovementRequest) { r.PaymentStatus = "parcial" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := uc.Create(context.Background(), "", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdate_ConservaFechaYRecalcula(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := memory.NewMovementRepository()
	uc := movement.NewMovementUseCase(repo).WithClock(func() time.Time { return at })
	created, err := uc.Create(context.Background(), "u", validRequest())
	require.NoError(t, err)

	uc.WithClock(func() time.Time { return at.Add(48 * time.Hour) })
	req := validRequest()
	req.TaxRate = d("0")
	req.PaymentStatus = "PAGADO"
	updated, err := uc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, at, updated.CreatedAt, "la fecha de alta no cambia al editar")
	assert.True(t, d("5000").Equal(updated.TotalAmount))
	assert.Equal(t, entity.StatusPaid, updated.PaymentStatus)

	_, err = uc.Update(context.Background(), "no-existe", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByCounterparty(t *testing.T) {
	uc := movement.NewMovementUseCase(memory.NewMovementRepository())
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, "", validRequest())
		require.NoError(t, err)
	}
	n, err := uc.DeleteByCounterparty(ctx, "Pedro")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = uc.DeleteByCounterparty(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RedondeaAEscalaDeColumnas(t *testing.T) {
	uc := movement.NewMovementUseCase(memory.NewMovementRepository())
	req := validRequest()
	req.WeightKg = d("10.12345")
	req.UnitPrice = d("3.123456")
	req.DepositAmount = d("1.00005")

	out, err := uc.Create(context.Background(), "", req)
	require.NoError(t, err)
	assert.True(t, d("10.123").Equal(out.WeightKg), out.WeightKg.String())
	assert.True(t, d("3.1235").Equal(out.UnitPrice), out.UnitPrice.String())
	assert.True(t, d("1.0001").Equal(out.DepositAmount), out.DepositAmount.String())
	assert.True(t, d("10.123").Mul(d("3.1235")).Equal(out.NetAmount), "el neto sale de los valores persistidos")
	assert.True(t, out.NetAmount.Mul(d("1.21")).Equal(out.TotalAmount))
}

func TestList_FiltroEstadoDesconocido(t *testing.T) {
	uc := movement.NewMovementUseCase(memory.NewMovementRepository())
	_, err := uc.List(context.Background(), dto.MovementFilterRequest{PaymentStatus: "IMPAGOS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), dto.MovementFilterRequest{PaymentStatus: "Impago"})
	assert.NoError(t, err)
}

func TestValuate_SinPersistir(t *testing.T) {
	uc := movement.NewMovementUseCase(memory.NewMovementRepository())
	out, err := uc.Valuate(dto.ValuationRequest{Quantity: 0, WeightKg: d("10"), UnitPrice: d("3"), TaxRate: d("0.105")})
	require.NoError(t, err)
	assert.True(t, d("30").Equal(out.Net))
	assert.True(t, d("33.15").Equal(out.Total))
	assert.True(t, out.AvgPerUnit.IsZero())
}
