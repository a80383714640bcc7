package repository

import (
	"context"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
)

// AccountPaymentRepository puerto de persistencia para pagos a cuenta (más nuevo primero).
type AccountPaymentRepository interface {
	Create(ctx context.Context, p *entity.AccountPayment) error
	GetByID(ctx context.Context, id string) (*entity.AccountPayment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.AccountPayment, error)
	ListByClient(ctx context.Context, name string) ([]*entity.AccountPayment, error)
	Count(ctx context.Context) (int64, error)
}
