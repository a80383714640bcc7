package repository

import (
	"context"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos (vacío = sin filtro).
type MovementFilter struct {
	PaymentStatus string
	Product       string
	Counterparty  string
}

// MovementRepository puerto de persistencia para Movement.
// List devuelve los movimientos del más nuevo al más viejo.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, m *entity.Movement) error
	Delete(ctx context.Context, id string) error
	DeleteByCounterparty(ctx context.Context, name string) (int64, error)
	List(ctx context.Context, f MovementFilter) ([]*entity.Movement, error)
	Count(ctx context.Context) (int64, error)
}
