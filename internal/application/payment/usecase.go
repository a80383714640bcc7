// Package payment contiene los casos de uso de pagos a cuenta.
package payment

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
)

// PaymentUseCase alta, baja y consulta de pagos a cuenta.
type PaymentUseCase struct {
	repo repository.AccountPaymentRepository
	now  func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.AccountPaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *PaymentUseCase) WithClock(now func() time.Time) *PaymentUseCase {
	uc.now = now
	return uc
}

// Create registra un pago. Requiere cliente, concepto y monto > 0.
func (uc *PaymentUseCase) Create(ctx context.Context, userID string, in dto.AccountPaymentRequest) (*dto.AccountPaymentResponse, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, domain.Invalid("client_name", "requerido")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor a 0")
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, domain.Invalid("concept", "requerido")
	}
	kind := entity.NormalizePaymentKind(in.Kind)
	if kind == "" {
		return nil, domain.Invalid("kind", "debe ser INGRESO o EGRESO")
	}
	p := &entity.AccountPayment{
		ID:         uuid.New().String(),
		CreatedAt:  uc.now(),
		ClientName: name,
		Amount:     in.Amount,
		Concept:    concept,
		Kind:       kind,
		CreatedBy:  userID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List pagos de todos los clientes o, si client no es vacío, de uno solo.
func (uc *PaymentUseCase) List(ctx context.Context, client string) ([]dto.AccountPaymentResponse, error) {
	var (
		list []*entity.AccountPayment
		err  error
	)
	if client = strings.TrimSpace(client); client != "" {
		list, err = uc.repo.ListByClient(ctx, client)
	} else {
		list, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

// Balances saldos a cuenta distintos de cero por cliente.
func (uc *PaymentUseCase) Balances(ctx context.Context) ([]dto.AccountBalanceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := ledger.AccountBalances(list)
	out := make([]dto.AccountBalanceResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.AccountBalanceResponse{ClientName: l.ClientName, Balance: l.Balance.Round(2)})
	}
	return out, nil
}

func toPaymentResponse(p *entity.AccountPayment) *dto.AccountPaymentResponse {
	return &dto.AccountPaymentResponse{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt,
		ClientName: p.ClientName,
		Amount:     p.Amount,
		Concept:    p.Concept,
		Kind:       p.Kind,
		CreatedBy:  p.CreatedBy,
	}
}
