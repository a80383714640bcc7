package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cueros-api/internal/application/auth"
	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/cueros-api/pkg/jwt"
)

func TestEnsureAdmin_IdempotenteYProtegido(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	users := auth.NewUserUseCase(repo, bcrypt.MinCost)

	created, err := users.EnsureAdmin(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = users.EnsureAdmin(ctx, "admin", "otra")
	require.NoError(t, err)
	assert.False(t, created, "no se duplica el administrador")

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)

	assert.ErrorIs(t, users.Delete(ctx, admin.ID), domain.ErrProtectedUser)
	role := entity.RoleUser
	_, err = users.Update(ctx, admin.ID, dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrProtectedUser)

	pass := "nueva"
	_, err = users.Update(ctx, admin.ID, dto.UpdateUserRequest{Password: &pass})
	assert.NoError(t, err, "el admin sí puede cambiar su contraseña")
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	users := auth.NewUserUseCase(repo, bcrypt.MinCost)
	u, err := users.Create(ctx, dto.CreateUserRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)

	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "s", ExpMinutes: 5, Issuer: "test"})

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)
	id, err := pkgjwt.Parse("s", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", id.Username)
	assert.Equal(t, entity.RoleUser, id.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	inactive := false
	_, err = users.Update(ctx, u.ID, dto.UpdateUserRequest{Active: &inactive})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = users.Create(ctx, dto.CreateUserRequest{Username: "ana", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
