// Package movement contiene los casos de uso de compras y ventas.
package movement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MovementUseCase alta, edición, baja y listado de movimientos.
type MovementUseCase struct {
	repo repository.MovementRepository
	now  func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.now = now
	return uc
}

// Create valida, valúa y persiste un movimiento nuevo.
func (uc *MovementUseCase) Create(ctx context.Context, userID string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	m, err := buildMovement(in)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	m.CreatedAt = uc.now()
	m.CreatedBy = userID
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return ToMovementResponse(m), nil
}

// Update reemplaza los campos editables y recalcula neto/total. La fecha original se conserva.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	m, err := buildMovement(in)
	if err != nil {
		return nil, err
	}
	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	m.CreatedBy = current.CreatedBy
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return ToMovementResponse(m), nil
}

// GetByID obtiene un movimiento.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return ToMovementResponse(m), nil
}

// Delete elimina un movimiento.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// DeleteByCounterparty elimina todos los movimientos de una contraparte.
func (uc *MovementUseCase) DeleteByCounterparty(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.Invalid("counterparty", "requerido")
	}
	return uc.repo.DeleteByCounterparty(ctx, name)
}

// List devuelve los movimientos filtrados, más nuevo primero.
func (uc *MovementUseCase) List(ctx context.Context, f dto.MovementFilterRequest) ([]dto.MovementResponse, error) {
	if err := CheckStatusFilter(f.PaymentStatus); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, repository.MovementFilter{
		PaymentStatus: f.PaymentStatus,
		Product:       f.Product,
		Counterparty:  f.Counterparty,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *ToMovementResponse(m))
	}
	return out, nil
}

// Valuate calcula neto, total y promedio sin persistir.
func (uc *MovementUseCase) Valuate(in dto.ValuationRequest) (*dto.ValuationResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.Invalid("quantity", "no puede ser negativa")
	}
	if err := checkAmounts(in.WeightKg, in.UnitPrice, decimal.Zero, in.TaxRate); err != nil {
		return nil, err
	}
	v := ledger.Valuate(in.Quantity, in.WeightKg, in.UnitPrice, in.TaxRate)
	return &dto.ValuationResponse{
		Net:        v.Net.Round(2),
		Total:      v.Total.Round(2),
		AvgPerUnit: v.AvgPerUnit.Round(2),
	}, nil
}

const (
	weightScale = 3
	amountScale = 4
)

func buildMovement(in dto.MovementRequest) (*entity.Movement, error) {
	direction := entity.NormalizeDirection(in.Direction)
	if direction == "" {
		return nil, domain.Invalid("direction", "debe ser IN u OUT")
	}
	counterparty := strings.TrimSpace(in.Counterparty)
	if counterparty == "" {
		return nil, domain.Invalid("counterparty", "requerido")
	}
	product := strings.TrimSpace(in.Product)
	if product == "" {
		return nil, domain.Invalid("product", "requerido")
	}
	if in.Quantity < 1 {
		return nil, domain.Invalid("quantity", "debe ser al menos 1")
	}
	if err := checkAmounts(in.WeightKg, in.UnitPrice, in.DepositAmount, in.TaxRate); err != nil {
		return nil, err
	}

	method := entity.PaymentMethodCash
	if strings.TrimSpace(in.PaymentMethod) != "" {
		method = entity.NormalizePaymentMethod(in.PaymentMethod)
		if method == "" {
			return nil, domain.Invalid("payment_method", "debe ser efectivo, a_cuenta, cheque u otros_productos")
		}
	}
	status := entity.StatusPaid
	if strings.TrimSpace(in.PaymentStatus) != "" {
		if !entity.ValidPaymentStatus(in.PaymentStatus) {
			return nil, domain.Invalid("payment_status", "debe ser PAGADO o IMPAGO")
		}
		status = entity.NormalizePaymentStatus(in.PaymentStatus)
	}

	// Escalas de las columnas weight_kg, unit_price y deposit_amount.
	weight := in.WeightKg.Round(weightScale)
	price := in.UnitPrice.Round(amountScale)
	v := ledger.Valuate(in.Quantity, weight, price, in.TaxRate)
	return &entity.Movement{
		Direction:     direction,
		Product:       product,
		Counterparty:  counterparty,
		Quantity:      in.Quantity,
		WeightKg:      weight,
		UnitPrice:     price,
		NetAmount:     v.Net,
		TaxRate:       in.TaxRate,
		TotalAmount:   v.Total,
		PaymentMethod: method,
		PaymentDetail: strings.TrimSpace(in.PaymentDetail),
		DepositAmount: in.DepositAmount.Round(amountScale),
		PaymentStatus: status,
	}, nil
}

func checkAmounts(weight, price, deposit, tax decimal.Decimal) error {
	if weight.IsNegative() {
		return domain.Invalid("weight_kg", "no puede ser negativo")
	}
	if price.IsNegative() {
		return domain.Invalid("unit_price", "no puede ser negativo")
	}
	if deposit.IsNegative() {
		return domain.Invalid("deposit_amount", "no puede ser negativo")
	}
	if !ledger.IsAllowedTaxRate(tax) {
		return domain.Invalid("tax_rate", "debe ser 0, 0.105 o 0.21")
	}
	return nil
}

// CheckStatusFilter rechaza un filtro de estado no reconocido; vacío es sin filtro.
func CheckStatusFilter(status string) error {
	if strings.TrimSpace(status) != "" && !entity.ValidPaymentStatus(status) {
		return domain.Invalid("status", "debe ser PAGADO o IMPAGO")
	}
	return nil
}

// ToMovementResponse mapea la entidad a DTO.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		Direction:     m.Direction,
		Product:       m.Product,
		Counterparty:  m.Counterparty,
		Quantity:      m.Quantity,
		WeightKg:      m.WeightKg,
		UnitPrice:     m.UnitPrice,
		NetAmount:     m.NetAmount,
		TaxRate:       m.TaxRate,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		PaymentDetail: m.PaymentDetail,
		DepositAmount: m.DepositAmount,
		PaymentStatus: entity.NormalizePaymentStatus(m.PaymentStatus),
		CreatedBy:     m.CreatedBy,
	}
}
