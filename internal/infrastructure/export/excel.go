package export

import (
	"context"
	"fmt"

	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/report"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/xuri/excelize/v2"
)

var _ report.Exporter = (*ExcelExporter)(nil)

const moneyFormat = "#,##0.00"

// ExcelExporter genera planillas XLSX con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// RenderStatement una hoja "Estado de Cuenta" con encabezado, líneas y saldo final.
func (e *ExcelExporter) RenderStatement(_ context.Context, st *ledger.Statement) ([]byte, error) {
	rows := make([][]any, 0, len(st.Lines)+1)
	for _, l := range st.Lines {
		rows = append(rows, statementCells(l))
	}
	rows = append(rows, statementTotalCells(st))
	return e.build("Estado de Cuenta", "Estado de cuenta: "+st.Name, statementHeader, rows, []int{4, 6, 7, 8})
}

// RenderRollup una hoja "Resumen" con una fila por contraparte y totales.
func (e *ExcelExporter) RenderRollup(_ context.Context, data []engine.EntityBalance, totals engine.EntityBalance) ([]byte, error) {
	rows := make([][]any, 0, len(data)+1)
	for _, b := range data {
		rows = append(rows, rollupCells(b))
	}
	rows = append(rows, rollupTotalCells(totals))
	return e.build("Resumen", "Resumen de todos los clientes", rollupHeader, rows, []int{2, 3, 4, 5, 6, 7})
}

// build escribe título en A1, encabezado en la fila 3 y datos desde la fila 4.
// moneyCols son índices de columna (1-based) con formato monetario.
func (e *ExcelExporter) build(sheet, title string, header []string, rows [][]any, moneyCols []int) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(moneyFormat)})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return nil, err
	}

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A3", &hdr); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 3)
	if err := f.SetCellStyle(sheet, "A3", last, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cells := make([]any, len(r))
		for j, v := range r {
			cells[j] = spreadsheetValue(v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	if len(rows) > 0 {
		for _, col := range moneyCols {
			from, _ := excelize.CoordinatesToCellName(col, 4)
			to, _ := excelize.CoordinatesToCellName(col, len(rows)+3)
			if err := f.SetCellStyle(sheet, from, to, money); err != nil {
				return nil, err
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string { return &s }
