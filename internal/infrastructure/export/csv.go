package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/report"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
)

var _ report.Exporter = (*CSVExporter)(nil)

// CSVExporter genera CSV separado por comas, UTF-8 con BOM para que Excel respete los acentos.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// RenderStatement encabezado, líneas y saldo final.
func (e *CSVExporter) RenderStatement(_ context.Context, st *ledger.Statement) ([]byte, error) {
	rows := make([][]any, 0, len(st.Lines)+1)
	for _, l := range st.Lines {
		rows = append(rows, statementCells(l))
	}
	rows = append(rows, statementTotalCells(st))
	return write(statementHeader, rows)
}

// RenderRollup una fila por contraparte y totales.
func (e *CSVExporter) RenderRollup(_ context.Context, data []engine.EntityBalance, totals engine.EntityBalance) ([]byte, error) {
	rows := make([][]any, 0, len(data)+1)
	for _, b := range data {
		rows = append(rows, rollupCells(b))
	}
	rows = append(rows, rollupTotalCells(totals))
	return write(rollupHeader, rows)
}

func write(header []string, rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\ufeff")
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: encabezado: %w", err)
	}
	rec := make([]string, len(header))
	for _, r := range rows {
		for i, v := range r {
			rec[i] = textValue(v)
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
