package service

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWorksheetNotFound is returned when a workbook has no sheet with the requested name.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// ErrInvalidWorkbook is returned when the input cannot be opened as a workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Table is the format-neutral content of a report.
type Table struct {
	Title   string // Sheet name or document title.
	Headers []string
	Rows    [][]any
}

// CSVWriter renders a table as comma separated values.
type CSVWriter interface {
	WriteCSV(table *Table) ([]byte, error)
}

// SpreadsheetWriter renders a table as an xlsx workbook.
type SpreadsheetWriter interface {
	WriteSpreadsheet(table *Table) ([]byte, error)
}

// SpreadsheetReader reads one column of a named worksheet.
type SpreadsheetReader interface {
	// ReadColumn returns the cell values of column (0-based) from startRow (1-based) on.
	ReadColumn(r io.Reader, sheet string, column, startRow int) ([]string, error)
}

// PDFWriter renders a table as a PDF document.
type PDFWriter interface {
	WritePDF(table *Table) ([]byte, error)
}
