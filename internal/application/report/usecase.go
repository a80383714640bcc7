// Package report genera exportes (XLSX, CSV, PDF) y contadores del sistema.
package report

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/domain"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

// File archivo listo para descargar.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

var contentTypes = map[string]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
}

// Renderers exportadores por formato; pdf solo aplica al estado de cuenta.
type Renderers struct {
	XLSX Exporter
	CSV  Exporter
	PDF  StatementRenderer
}

// ReportUseCase exportes y estadísticas.
type ReportUseCase struct {
	ledger    *ledger.LedgerUseCase
	renderers Renderers
	repos     repository.Set
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(ledgerUC *ledger.LedgerUseCase, renderers Renderers, repos repository.Set) *ReportUseCase {
	return &ReportUseCase{ledger: ledgerUC, renderers: renderers, repos: repos, now: time.Now}
}

// ExportStatement estado de cuenta de name en el formato pedido.
func (uc *ReportUseCase) ExportStatement(ctx context.Context, name, format string) (*File, error) {
	format = strings.ToLower(format)
	var r StatementRenderer
	switch format {
	case FormatXLSX:
		r = uc.renderers.XLSX
	case FormatCSV:
		r = uc.renderers.CSV
	case FormatPDF:
		r = uc.renderers.PDF
	}
	if r == nil {
		return nil, domain.Invalid("format", "debe ser xlsx, csv o pdf")
	}
	st, err := uc.ledger.BuildStatement(ctx, name)
	if err != nil {
		return nil, err
	}
	body, err := r.RenderStatement(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("report: estado de cuenta %s: %w", format, err)
	}
	return &File{
		Name:        fmt.Sprintf("estado_cuenta_%s_%s.%s", slug(st.Name), uc.now().Format("20060102"), format),
		ContentType: contentTypes[format],
		Body:        body,
	}, nil
}

// ExportRollup resumen general en xlsx o csv.
func (uc *ReportUseCase) ExportRollup(ctx context.Context, format string) (*File, error) {
	format = strings.ToLower(format)
	var r RollupRenderer
	switch format {
	case FormatXLSX:
		r = uc.renderers.XLSX
	case FormatCSV:
		r = uc.renderers.CSV
	}
	if r == nil {
		return nil, domain.Invalid("format", "debe ser xlsx o csv")
	}
	rows, err := uc.ledger.BuildRollup(ctx)
	if err != nil {
		return nil, err
	}
	body, err := r.RenderRollup(ctx, rows, engine.RollupTotals(rows))
	if err != nil {
		return nil, fmt.Errorf("report: resumen %s: %w", format, err)
	}
	return &File{
		Name:        fmt.Sprintf("resumen_clientes_%s.%s", uc.now().Format("20060102"), format),
		ContentType: contentTypes[format],
		Body:        body,
	}, nil
}

// Stats cantidad de usuarios, clientes, movimientos y pagos.
func (uc *ReportUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var (
		out dto.StatsResponse
		err error
	)
	if out.Users, err = uc.repos.Users.Count(ctx); err != nil {
		return nil, err
	}
	if out.Clients, err = uc.repos.Clients.Count(ctx); err != nil {
		return nil, err
	}
	if out.Movements, err = uc.repos.Movements.Count(ctx); err != nil {
		return nil, err
	}
	if out.Payments, err = uc.repos.Payments.Count(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

var nonSlug = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func slug(s string) string {
	s = strings.Trim(nonSlug.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "cliente"
	}
	return strings.ToLower(s)
}
