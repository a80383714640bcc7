package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
)

func TestMovementRepo_ListMasNuevoPrimeroYFiltros(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMovementRepository()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "a", CreatedAt: t0, Counterparty: "Juan", Product: "Sal", PaymentStatus: entity.StatusUnpaid}))
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "b", CreatedAt: t0.Add(time.Hour), Counterparty: "Ana", Product: "Cueros"}))
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "c", CreatedAt: t0, Counterparty: "Juan", Product: "Cueros"}))

	all, err := repo.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "c", all[1].ID, "con igual fecha, el último insertado primero")
	assert.Equal(t, "a", all[2].ID)

	paid, err := repo.List(ctx, repository.MovementFilter{PaymentStatus: entity.StatusPaid, Counterparty: "Juan"})
	require.NoError(t, err)
	require.Len(t, paid, 1, "estado vacío cuenta como pagado")
	assert.Equal(t, "c", paid[0].ID)

	n, err := repo.DeleteByCounterparty(ctx, "Juan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestMovementRepo_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMovementRepository()

	m, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Movement{ID: "nope"}), domain.ErrNotFound)
}

func TestClientRepo_NombreUnicoYActivos(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()

	require.NoError(t, repo.Create(ctx, &entity.Client{ID: "1", Name: "Zeta", Active: true}))
	require.NoError(t, repo.Create(ctx, &entity.Client{ID: "2", Name: "Alfa", Active: false}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Client{ID: "3", Name: "Zeta"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Client{ID: "2", Name: "Zeta"}), domain.ErrDuplicate)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alfa", all[0].Name)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Zeta", active[0].Name)
}

func TestAccountPaymentRepo_ListByClient(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountPaymentRepository()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.AccountPayment{ID: "1", CreatedAt: t0, ClientName: "Juan"}))
	require.NoError(t, repo.Create(ctx, &entity.AccountPayment{ID: "2", CreatedAt: t0.Add(time.Hour), ClientName: "Juan"}))
	require.NoError(t, repo.Create(ctx, &entity.AccountPayment{ID: "3", CreatedAt: t0, ClientName: "Ana"}))

	list, err := repo.ListByClient(ctx, "Juan")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
}
