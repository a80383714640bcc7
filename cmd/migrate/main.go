// migrate aplica las migraciones SQL embebidas y siembra el administrador inicial.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cueros-api/internal/application/auth"
	"github.com/jhoicas/cueros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cueros-api/pkg/config"
	"github.com/jhoicas/cueros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.App.Storage != config.StoragePostgres {
		log.Warn().Str("storage", cfg.App.Storage).Msg("sin migraciones para este almacenamiento")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var applied []string
	err = postgres.NewTxRunner(pool).RunQuerier(ctx, func(q postgres.Querier) error {
		applied, err = postgres.Migrate(ctx, q)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("aplicada")
	}
	if len(applied) == 0 {
		log.Info().Msg("esquema al día")
	}

	users := auth.NewUserUseCase(postgres.NewUserRepository(pool), bcrypt.DefaultCost)
	created, err := users.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador inicial")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("administrador creado")
	}
}
