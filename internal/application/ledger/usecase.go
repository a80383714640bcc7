// Package ledger expone el motor de saldos sobre una instantánea leída de los repositorios.
//
// Cada llamada lee movimientos y pagos de nuevo; no hay caché entre invocaciones.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

// Snapshot movimientos y pagos leídos juntos, más nuevo primero.
type Snapshot struct {
	Movements []*entity.Movement
	Payments  []*entity.AccountPayment
}

// Statement estado de cuenta calculado, antes de mapear a DTO o exportar.
type Statement struct {
	Name    string
	Lines   []engine.StatementLine
	Balance engine.EntityBalance
}

// LedgerUseCase resumen, saldos, estado de cuenta y resumen general.
type LedgerUseCase struct {
	movements repository.MovementRepository
	payments  repository.AccountPaymentRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(movements repository.MovementRepository, payments repository.AccountPaymentRepository) *LedgerUseCase {
	return &LedgerUseCase{movements: movements, payments: payments}
}

// Snapshot lee movimientos y pagos en paralelo. client vacío = todos.
func (uc *LedgerUseCase) Snapshot(ctx context.Context, client string) (*Snapshot, error) {
	type movResult struct {
		list []*entity.Movement
		err  error
	}
	type payResult struct {
		list []*entity.AccountPayment
		err  error
	}

	movCh := make(chan movResult, 1)
	payCh := make(chan payResult, 1)

	go func() {
		list, err := uc.movements.List(ctx, repository.MovementFilter{Counterparty: client})
		movCh <- movResult{list, err}
	}()
	go func() {
		var (
			list []*entity.AccountPayment
			err  error
		)
		if client != "" {
			list, err = uc.payments.ListByClient(ctx, client)
		} else {
			list, err = uc.payments.List(ctx)
		}
		payCh <- payResult{list, err}
	}()

	movs := <-movCh
	pays := <-payCh

	if movs.err != nil {
		return nil, fmt.Errorf("ledger: movimientos: %w", movs.err)
	}
	if pays.err != nil {
		return nil, fmt.Errorf("ledger: pagos a cuenta: %w", pays.err)
	}
	return &Snapshot{Movements: movs.list, Payments: pays.list}, nil
}

// Summary stock y caja con filtros opcionales (AND).
func (uc *LedgerUseCase) Summary(ctx context.Context, f dto.MovementFilterRequest) (*dto.SummaryResponse, error) {
	if strings.TrimSpace(f.PaymentStatus) != "" && !entity.ValidPaymentStatus(f.PaymentStatus) {
		return nil, domain.Invalid("status", "debe ser PAGADO o IMPAGO")
	}
	list, err := uc.movements.List(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("ledger: movimientos: %w", err)
	}
	s := engine.ComputeSummary(list, engine.Filter{
		PaymentStatus: f.PaymentStatus,
		Product:       f.Product,
		Counterparty:  f.Counterparty,
	})
	return ToSummaryResponse(s), nil
}

// EntityBalance saldo de una contraparte, exista o no como cliente.
func (uc *LedgerUseCase) EntityBalance(ctx context.Context, name string) (*dto.EntityBalanceResponse, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	snap, err := uc.Snapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	b := engine.ComputeEntityBalance(name, snap.Movements, snap.Payments)
	out := ToEntityBalanceResponse(b)
	return &out, nil
}

// BuildStatement calcula el estado de cuenta sin mapear (exportes).
func (uc *LedgerUseCase) BuildStatement(ctx context.Context, name string) (*Statement, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	snap, err := uc.Snapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Statement{
		Name:    name,
		Lines:   engine.ComputeStatement(name, snap.Movements, snap.Payments),
		Balance: engine.ComputeEntityBalance(name, snap.Movements, snap.Payments),
	}, nil
}

// Statement estado de cuenta como DTO.
func (uc *LedgerUseCase) Statement(ctx context.Context, name string) (*dto.StatementResponse, error) {
	st, err := uc.BuildStatement(ctx, name)
	if err != nil {
		return nil, err
	}
	lines := make([]dto.StatementLineResponse, 0, len(st.Lines))
	for _, l := range st.Lines {
		lines = append(lines, dto.StatementLineResponse{
			Date:     l.Date,
			Kind:     l.Kind,
			SourceID: l.SourceID,
			Detail:   l.Detail,
			Amount:   l.Amount.Round(2),
			Status:   l.Status,
			Debit:    l.Debit.Round(2),
			Credit:   l.Credit.Round(2),
			Balance:  l.Balance.Round(2),
		})
	}
	return &dto.StatementResponse{
		Name:    st.Name,
		Lines:   lines,
		Total:   engine.StatementTotal(st.Lines).Round(2),
		Balance: ToEntityBalanceResponse(st.Balance),
	}, nil
}

// BuildRollup calcula el resumen general sin mapear (exportes).
func (uc *LedgerUseCase) BuildRollup(ctx context.Context) ([]engine.EntityBalance, error) {
	snap, err := uc.Snapshot(ctx, "")
	if err != nil {
		return nil, err
	}
	return engine.ComputeRollup(snap.Movements, snap.Payments), nil
}

// Rollup resumen de todas las contrapartes, mayor saldo final primero.
func (uc *LedgerUseCase) Rollup(ctx context.Context) (*dto.RollupResponse, error) {
	rows, err := uc.BuildRollup(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RollupResponse{
		Rows:   make([]dto.EntityBalanceResponse, 0, len(rows)),
		Totals: ToEntityBalanceResponse(engine.RollupTotals(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, ToEntityBalanceResponse(r))
	}
	return out, nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Invalid("name", "requerido")
	}
	return name, nil
}

// ToSummaryResponse mapea el resumen a DTO (montos a 2 decimales).
func ToSummaryResponse(s engine.Summary) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		StockUnits:       s.StockUnits,
		StockWeightKg:    s.StockWeightKg,
		PayableUnpaid:    s.PayableUnpaid.Round(2),
		ReceivableUnpaid: s.ReceivableUnpaid.Round(2),
		Collected:        s.Collected.Round(2),
		PaidOut:          s.PaidOut.Round(2),
		ExpectedCash:     s.ExpectedCash.Round(2),
		AvgCostPerKg:     s.AvgCostPerKg.Round(2),
	}
}

// ToEntityBalanceResponse mapea un saldo a DTO.
func ToEntityBalanceResponse(b engine.EntityBalance) dto.EntityBalanceResponse {
	return dto.EntityBalanceResponse{
		Name:             b.Name,
		Purchased:        b.Purchased.Round(2),
		Sold:             b.Sold.Round(2),
		PaidPurchases:    b.PaidPurchases.Round(2),
		CollectedSales:   b.CollectedSales.Round(2),
		PayableUnpaid:    b.PayableUnpaid.Round(2),
		ReceivableUnpaid: b.ReceivableUnpaid.Round(2),
		AccountBalance:   b.AccountBalance.Round(2),
		FinalBalance:     b.FinalBalance.Round(2),
		Movements:        b.Movements,
		Payments:         b.Payments,
	}
}
