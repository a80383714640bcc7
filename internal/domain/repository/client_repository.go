package repository

import (
	"context"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para Client. List ordena por nombre.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByName(ctx context.Context, name string) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Client, error)
	Count(ctx context.Context) (int64, error)
}
