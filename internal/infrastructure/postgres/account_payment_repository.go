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

var _ repository.AccountPaymentRepository = (*AccountPaymentRepo)(nil)

var paymentColumns = []string{
	"id", "created_at", "client_name", "amount", "concept", "kind", "COALESCE(created_by, '') AS created_by",
}

// AccountPaymentRepo implementación del puerto AccountPaymentRepository sobre PostgreSQL.
type AccountPaymentRepo struct {
	q Querier
}

// NewAccountPaymentRepository construye el adaptador para pagos a cuenta.
func NewAccountPaymentRepository(q Querier) *AccountPaymentRepo {
	return &AccountPaymentRepo{q: q}
}

// Create persiste un pago a cuenta.
func (r *AccountPaymentRepo) Create(ctx context.Context, p *entity.AccountPayment) error {
	query := `
		INSERT INTO account_payments (id, created_at, client_name, amount, concept, kind, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`
	_, err := r.q.Exec(ctx, query, p.ID, p.CreatedAt, p.ClientName, p.Amount, p.Concept, p.Kind, p.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *AccountPaymentRepo) GetByID(ctx context.Context, id string) (*entity.AccountPayment, error) {
	sql, args, err := psql.Select(paymentColumns...).From("account_payments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var p entity.AccountPayment
	if err := pgxscan.Get(ctx, r.q, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account payment: %w", err)
	}
	return &p, nil
}

// Delete elimina un pago por ID.
func (r *AccountPaymentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM account_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los pagos, más nuevo primero.
func (r *AccountPaymentRepo) List(ctx context.Context) ([]*entity.AccountPayment, error) {
	return r.list(ctx, nil)
}

// ListByClient pagos de un cliente, más nuevo primero.
func (r *AccountPaymentRepo) ListByClient(ctx context.Context, name string) ([]*entity.AccountPayment, error) {
	return r.list(ctx, squirrel.Eq{"client_name": name})
}

func (r *AccountPaymentRepo) list(ctx context.Context, where squirrel.Sqlizer) ([]*entity.AccountPayment, error) {
	q := psql.Select(paymentColumns...).From("account_payments")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.OrderBy("created_at DESC", "seq DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var list []*entity.AccountPayment
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list account payments: %w", err)
	}
	return list, nil
}

// Count total de pagos a cuenta.
func (r *AccountPaymentRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.q, "account_payments")
	if err != nil {
		return 0, fmt.Errorf("count account payments: %w", err)
	}
	return n, nil
}
