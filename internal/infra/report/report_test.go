package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *service.Table {
	dob := time.Date(1990, time.March, 7, 0, 0, 0, 0, time.UTC)
	age := "35 years"

	return &service.Table{
		Title:   "PersonsList",
		Headers: []string{"Person Name", "Email", "Date of Birth", "Age", "Newsletters"},
		Rows: [][]any{
			{"Ann", "ann@example.com", &dob, &age, true},
			{"Bob, Jr.", "bob@example.com", (*time.Time)(nil), (*string)(nil), false},
		},
	}
}

func TestFormatCell(t *testing.T) {
	dob := time.Date(2001, time.December, 25, 0, 0, 0, 0, time.UTC)
	s := "x"

	assert.Equal(t, "", FormatCell(nil))
	assert.Equal(t, "x", FormatCell(&s))
	assert.Equal(t, "", FormatCell((*string)(nil)))
	assert.Equal(t, "25 December 2001", FormatCell(dob))
	assert.Equal(t, "25 December 2001", FormatCell(&dob))
	assert.Equal(t, "true", FormatCell(true))
	assert.Equal(t, "42", FormatCell(42))
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	out, err := NewCSVWriter().WriteCSV(sampleTable())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Person Name", "Email", "Date of Birth", "Age", "Newsletters"}, records[0])
	assert.Equal(t, []string{"Ann", "ann@example.com", "07 March 1990", "35 years", "true"}, records[1])
	assert.Equal(t, "Bob, Jr.", records[2][0])
	assert.Equal(t, "", records[2][2])
}

func TestExcelWriter_WriteSpreadsheet(t *testing.T) {
	out, err := NewExcelWriter(&config.Config{}).WriteSpreadsheet(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"PersonsList"}, f.GetSheetList())

	rows, err := f.GetRows("PersonsList")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Person Name", rows[0][0])
	assert.Equal(t, "07 March 1990", rows[1][2])
	assert.Equal(t, "TRUE", rows[1][4])

	width, err := f.GetColWidth("PersonsList", "B")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("ann@example.com")+columnPadding), width, 0.01)
}

func TestExcelWriter_CapsColumnWidth(t *testing.T) {
	cfg := &config.Config{Reports: &config.ReportsConfig{MaxColumnWidth: 10}}
	out, err := NewExcelWriter(cfg).WriteSpreadsheet(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	width, err := f.GetColWidth("PersonsList", "B")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, width, 0.01)
}

func countriesWorkbook(t *testing.T, sheet string, names ...string) *bytes.Reader {
	t.Helper()

	out, err := NewExcelWriter(nil).WriteSpreadsheet(&service.Table{
		Title:   sheet,
		Headers: []string{"CountryName"},
		Rows: func() [][]any {
			rows := make([][]any, 0, len(names))
			for _, n := range names {
				rows = append(rows, []any{n})
			}

			return rows
		}(),
	})
	require.NoError(t, err)

	return bytes.NewReader(out)
}

func TestExcelReader_ReadColumn(t *testing.T) {
	r := countriesWorkbook(t, "Countries", " Peru ", "", "Chile")

	values, err := NewExcelReader().ReadColumn(r, "Countries", 0, 2)

	require.NoError(t, err)
	// GetRows drops trailing empty rows but keeps empty ones in between.
	assert.Equal(t, []string{"Peru", "", "Chile"}, values)
}

func TestExcelReader_MissingWorksheet(t *testing.T) {
	r := countriesWorkbook(t, "Nations", "Peru")

	_, err := NewExcelReader().ReadColumn(r, "Countries", 0, 2)

	assert.True(t, errors.Is(err, service.ErrWorksheetNotFound))
}

func TestExcelReader_InvalidWorkbook(t *testing.T) {
	_, err := NewExcelReader().ReadColumn(bytes.NewReader([]byte("not a workbook")), "Countries", 0, 2)

	assert.True(t, errors.Is(err, service.ErrInvalidWorkbook))
}

func TestPDFWriter_WritePDF(t *testing.T) {
	table := sampleTable()
	table.Title = ""

	out, err := NewPDFWriter(&config.Config{}).WritePDF(table)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestPDFWriter_ManyRowsSpanPages(t *testing.T) {
	table := &service.Table{Title: "Persons List", Headers: []string{"Name", "Address"}}
	for range 200 {
		table.Rows = append(table.Rows, []any{"Someone with a rather long name", "A very long street address that needs truncation in narrow columns"})
	}

	out, err := NewPDFWriter(nil).WritePDF(table)

	require.NoError(t, err)
	assert.True(t, bytes.Contains(out, []byte("/Count ")))
}

func TestPDFWriter_FitColumnsStayOnPage(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pageWidth, _ := pdf.GetPageSize()
	available := pageWidth - 2*pdfMargin

	sum := func(widths []float64) float64 {
		var total float64
		for _, w := range widths {
			total += w
		}

		return total
	}

	t.Run("one wide column", func(t *testing.T) {
		table := &service.Table{
			Headers: []string{"Id", "Name", "Email", "Gender", "Country", "Address", "Newsletters", "PIN"},
			Rows:    [][]any{{"1", "Al", "al@example.com", "Male", "UK", strings.Repeat("Long Road ", 40), true, "1234"}},
		}

		widths := (&pdfWriter{}).fitColumns(pdf, table)

		assert.InDelta(t, available, sum(widths), 0.001)
		for _, w := range widths {
			assert.GreaterOrEqual(t, w, pdfMinColumnW-0.001)
		}
	})

	t.Run("more columns than fit at the minimum", func(t *testing.T) {
		table := &service.Table{Headers: make([]string, 30)}
		for i := range table.Headers {
			table.Headers[i] = "Column"
		}

		widths := (&pdfWriter{}).fitColumns(pdf, table)

		assert.InDelta(t, available, sum(widths), 0.001)
	})
}

func TestTruncate_CutsBeforeTranslating(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfBodySize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	t.Run("fits", func(t *testing.T) {
		assert.Equal(t, tr("Zoë"), truncate(pdf, tr, "Zoë", 50))
	})

	t.Run("shortened", func(t *testing.T) {
		out := truncate(pdf, tr, "Zoë Ångström-Müller of Ærøskøbing", 25)

		assert.True(t, strings.HasPrefix(out, tr("Zoë")))
		assert.True(t, strings.HasSuffix(out, pdfEllipsis))
		assert.NotContains(t, out, "\uFFFD")
		assert.LessOrEqual(t, pdf.GetStringWidth(out), 25.0)
	})
}
