package report

import (
	"context"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
)

// Formatos de exportación.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// StatementRenderer genera un archivo con el estado de cuenta.
type StatementRenderer interface {
	RenderStatement(ctx context.Context, st *ledger.Statement) ([]byte, error)
}

// RollupRenderer genera un archivo con el resumen general.
type RollupRenderer interface {
	RenderRollup(ctx context.Context, rows []engine.EntityBalance, totals engine.EntityBalance) ([]byte, error)
}

// Exporter tabla exportable (XLSX, CSV): estado de cuenta y resumen general.
type Exporter interface {
	StatementRenderer
	RollupRenderer
}
