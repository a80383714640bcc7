package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cueros-api/pkg/config"
)

func TestLoad_ValoresDesdeEntorno(t *testing.T) {
	t.Setenv("STORAGE", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOGIN_BURST", "no-es-numero")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.App.Storage)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst, "valor inválido vuelve al default")
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestLoad_StorageDesconocido(t *testing.T) {
	t.Setenv("STORAGE", "firestore")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "cueros", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/cueros?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
