// Package storage abre el backend configurado (PostgreSQL o memoria).
package storage

import (
	"context"

	"github.com/jhoicas/cueros-api/internal/domain/repository"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
	"github.com/jhoicas/cueros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cueros-api/pkg/config"
)

// Open devuelve los repositorios y la función que libera la conexión.
func Open(ctx context.Context, cfg *config.Config) (repository.Set, func(), error) {
	if cfg.App.Storage == config.StorageMemory {
		return memory.NewRepositories(), func() {}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return repository.Set{}, nil, err
	}
	return postgres.NewRepositories(pool), pool.Close, nil
}
