package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 4

// UserUseCase administración de usuarios (solo admin).
// El usuario "admin" no se elimina ni cambia de rol.
type UserUseCase struct {
	repo repository.UserRepository
	cost int
}

// NewUserUseCase construye el caso de uso. cost <= 0 usa bcrypt.DefaultCost.
func NewUserUseCase(repo repository.UserRepository, cost int) *UserUseCase {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, cost: cost}
}

// Create crea un usuario activo. Username repetido -> ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.Invalid("username", "requerido")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.Invalid("password", "debe tener al menos 4 caracteres")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.Invalid("role", "debe ser admin o user")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List usuarios por username.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update cambia contraseña, rol o estado.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Role != nil && *in.Role != user.Role {
		if user.IsProtected() {
			return nil, domain.ErrProtectedUser
		}
		if !entity.ValidRole(*in.Role) {
			return nil, domain.Invalid("role", "debe ser admin o user")
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		if user.IsProtected() && !*in.Active {
			return nil, domain.ErrProtectedUser
		}
		user.Active = *in.Active
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.Invalid("password", "debe tener al menos 4 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.cost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario que no sea el administrador inicial.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.IsProtected() {
		return domain.ErrProtectedUser
	}
	return uc.repo.Delete(ctx, id)
}

// EnsureAdmin crea el administrador inicial si no existe. Devuelve true si lo creó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		username = entity.ProtectedUsername
	}
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := uc.Create(ctx, dto.CreateUserRequest{Username: username, Password: password, Role: entity.RoleAdmin}); err != nil {
		return false, err
	}
	return true, nil
}
