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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// Columnas agregadas en versiones posteriores pueden venir NULL en filas migradas.
var movementColumns = []string{
	"id", "created_at", "direction", "product", "counterparty", "quantity",
	"weight_kg", "unit_price",
	"COALESCE(net_amount, 0) AS net_amount",
	"COALESCE(tax_rate, 0) AS tax_rate",
	"total_amount",
	"COALESCE(payment_method, '') AS payment_method",
	"COALESCE(payment_detail, '') AS payment_detail",
	"COALESCE(deposit_amount, 0) AS deposit_amount",
	"COALESCE(payment_status, '') AS payment_status",
	"COALESCE(created_by, '') AS created_by",
}

const unpaidCondition = "UPPER(COALESCE(payment_status, '')) IN ('IMPAGO', 'UNPAID')"

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un nuevo movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, created_at, direction, product, counterparty, quantity, weight_kg, unit_price,
			net_amount, tax_rate, total_amount, payment_method, payment_detail, deposit_amount, payment_status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''))`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CreatedAt, m.Direction, m.Product, m.Counterparty, m.Quantity, m.WeightKg, m.UnitPrice,
		m.NetAmount, m.TaxRate, m.TotalAmount, m.PaymentMethod, m.PaymentDetail, m.DepositAmount, m.PaymentStatus, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	sql, args, err := psql.Select(movementColumns...).From("movements").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var m entity.Movement
	if err := pgxscan.Get(ctx, r.q, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update reescribe los campos editables. created_at no cambia.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query := `
		UPDATE movements SET direction = $2, product = $3, counterparty = $4, quantity = $5, weight_kg = $6,
			unit_price = $7, net_amount = $8, tax_rate = $9, total_amount = $10, payment_method = $11,
			payment_detail = $12, deposit_amount = $13, payment_status = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.Direction, m.Product, m.Counterparty, m.Quantity, m.WeightKg,
		m.UnitPrice, m.NetAmount, m.TaxRate, m.TotalAmount, m.PaymentMethod,
		m.PaymentDetail, m.DepositAmount, m.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCounterparty elimina todos los movimientos de una contraparte y devuelve cuántos borró.
func (r *MovementRepo) DeleteByCounterparty(ctx context.Context, name string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM movements WHERE counterparty = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("delete movements by counterparty: %w", err)
	}
	return tag.RowsAffected(), nil
}

// List devuelve los movimientos filtrados, del más nuevo al más viejo.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	q := psql.Select(movementColumns...).From("movements")
	if f.Counterparty != "" {
		q = q.Where(squirrel.Eq{"counterparty": f.Counterparty})
	}
	if f.Product != "" {
		q = q.Where("LOWER(product) = LOWER(?)", f.Product)
	}
	if f.PaymentStatus != "" {
		// Filas históricas guardan "Impago"/"Pagado" o NULL; NULL cuenta como pagado.
		if entity.NormalizePaymentStatus(f.PaymentStatus) == entity.StatusUnpaid {
			q = q.Where(unpaidCondition)
		} else {
			q = q.Where("NOT " + unpaidCondition)
		}
	}
	q = q.OrderBy("created_at DESC", "seq DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var list []*entity.Movement
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}

// Count total de movimientos.
func (r *MovementRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.q, "movements")
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
