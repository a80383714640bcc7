package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

var clientColumns = []string{
	"id", "name", "kind", "phone", "email", "address", "notes", "active", "created_at", "updated_at",
}

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente. Nombre repetido -> ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, kind, phone, email, address, notes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Kind, c.Phone, c.Email, c.Address, c.Notes, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName obtiene un cliente por nombre exacto.
func (r *ClientRepo) GetByName(ctx context.Context, name string) (*entity.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

func (r *ClientRepo) getOne(ctx context.Context, where squirrel.Eq) (*entity.Client, error) {
	sql, args, err := psql.Select(clientColumns...).From("clients").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var c entity.Client
	if err := pgxscan.Get(ctx, r.q, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente. No toca movimientos ni pagos que usen el nombre anterior.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, kind = $3, phone = $4, email = $5, address = $6, notes = $7,
			active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Kind, c.Phone, c.Email, c.Address, c.Notes, c.Active, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente sin cascada.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes por nombre; activeOnly restringe a activos.
func (r *ClientRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Client, error) {
	q := psql.Select(clientColumns...).From("clients")
	if activeOnly {
		q = q.Where(squirrel.Eq{"active": true})
	}
	sql, args, err := q.OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var list []*entity.Client
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

// Count total de clientes.
func (r *ClientRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.q, "clients")
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}
