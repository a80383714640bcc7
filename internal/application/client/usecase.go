// Package client contiene los casos de uso del directorio de clientes y proveedores.
package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

// ClientUseCase reglas del directorio de clientes.
// Renombrar o borrar un cliente no modifica movimientos ni pagos: quedan asociados al nombre anterior.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create da de alta un cliente. Nombre repetido -> ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	name, kind, err := validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      kind,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
		Active:    in.Active == nil || *in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Update reemplaza los datos del cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	name, kind, err := validate(in)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	c.Kind = kind
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = strings.TrimSpace(in.Email)
	c.Address = strings.TrimSpace(in.Address)
	c.Notes = strings.TrimSpace(in.Notes)
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Delete elimina el cliente (sin cascada).
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List lista clientes por nombre.
func (uc *ClientUseCase) List(ctx context.Context, activeOnly bool) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

func validate(in dto.ClientRequest) (name, kind string, err error) {
	name = strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", domain.Invalid("name", "requerido")
	}
	kind = entity.ClientKindCustomer
	if strings.TrimSpace(in.Kind) != "" {
		kind = entity.NormalizeClientKind(in.Kind)
		if kind == "" {
			return "", "", domain.Invalid("kind", "debe ser CLIENTE o PROVEEDOR")
		}
	}
	return name, kind, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      c.Kind,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
