package report

import (
	"bytes"
	"io"
	"strings"

	"contacts/config"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet          = "Sheet1"
	defaultMaxColumnWidth = 60
	columnPadding         = 2
)

type excelWriter struct {
	maxColumnWidth float64
}

// NewExcelWriter returns an xlsx writer with fitted column widths.
func NewExcelWriter(cfg *config.Config) service.SpreadsheetWriter {
	maxWidth := float64(defaultMaxColumnWidth)
	if cfg != nil && cfg.Reports != nil && cfg.Reports.MaxColumnWidth > 0 {
		maxWidth = cfg.Reports.MaxColumnWidth
	}

	return &excelWriter{maxColumnWidth: maxWidth}
}

// WriteSpreadsheet writes the table to a single sheet named after the table title.
func (w *excelWriter) WriteSpreadsheet(table *service.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := table.Title
	if sheet == "" {
		sheet = defaultSheet
	}

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "create sheet")
	}
	if sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, errors.Wrap(err, "delete default sheet")
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "header coordinates")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrapf(err, "set header cell %s", cell)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrap(err, "set header style")
		}
	}

	for rowIdx, row := range table.Rows {
		for col := 0; col < len(row) && col < len(table.Headers); col++ {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, errors.Wrap(err, "row coordinates")
			}
			if err := f.SetCellValue(sheet, cell, excelValue(row[col])); err != nil {
				return nil, errors.Wrapf(err, "set cell %s", cell)
			}
		}
	}

	for i, width := range columnWidths(table.Headers, table.Rows) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.Wrap(err, "column name")
		}
		if err := f.SetColWidth(sheet, col, col, min(float64(width+columnPadding), w.maxColumnWidth)); err != nil {
			return nil, errors.Wrap(err, "set column width")
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

// excelValue keeps booleans native and renders everything else as report text.
func excelValue(v any) any {
	if b, ok := v.(bool); ok {
		return b
	}

	return FormatCell(v)
}

type excelReader struct{}

// NewExcelReader returns a reader for xlsx workbooks.
func NewExcelReader() service.SpreadsheetReader {
	return &excelReader{}
}

// ReadColumn returns the trimmed values of one column, starting at startRow.
func (rd *excelReader) ReadColumn(r io.Reader, sheet string, column, startRow int) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidWorkbook, err.Error())
	}
	defer func() { _ = f.Close() }()

	index, err := f.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		return nil, service.ErrWorksheetNotFound
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}

	if startRow < 1 {
		startRow = 1
	}

	values := make([]string, 0, len(rows))
	for i := startRow - 1; i < len(rows); i++ {
		value := ""
		if column < len(rows[i]) {
			value = strings.TrimSpace(rows[i][column])
		}
		values = append(values, value)
	}

	return values, nil
}
