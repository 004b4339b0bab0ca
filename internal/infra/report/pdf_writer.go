package report

import (
	"bytes"

	"contacts/config"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfMargin     = 10.0
	pdfRowHeight  = 7.0
	pdfTitleSize  = 16.0
	pdfBodySize   = 9.0
	pdfEllipsis   = "..."
	pdfMinColumnW = 12.0
)

type pdfWriter struct {
	defaultTitle string
}

// NewPDFWriter returns a writer rendering landscape A4 tables.
func NewPDFWriter(cfg *config.Config) service.PDFWriter {
	title := "Persons List"
	if cfg != nil && cfg.Reports != nil && cfg.Reports.PDFTitle != "" {
		title = cfg.Reports.PDFTitle
	}

	return &pdfWriter{defaultTitle: title}
}

// WritePDF renders the title and the table, repeating the header row on every page.
func (w *pdfWriter) WritePDF(table *service.Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	widths := w.fitColumns(pdf, table)

	header := func() {
		pdf.SetFont(pdfFont, "B", pdfBodySize)
		pdf.SetFillColor(211, 211, 211)
		for i, h := range table.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", pdfBodySize)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()

	title := table.Title
	if title == "" {
		title = w.defaultTitle
	}
	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	header()
	for _, row := range table.Rows {
		for i := range table.Headers {
			text := ""
			if i < len(row) {
				text = FormatCell(row[i])
			}
			pdf.CellFormat(widths[i], pdfRowHeight, truncate(pdf, tr, text, widths[i]-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	return buf.Bytes(), nil
}

// fitColumns shares the printable width between columns in proportion to their content.
// Columns never drop below pdfMinColumnW unless there are too many of them
// to fit at that width, and the total never exceeds the printable width.
func (w *pdfWriter) fitColumns(pdf *fpdf.Fpdf, table *service.Table) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	available := pageWidth - 2*pdfMargin

	chars := columnWidths(table.Headers, table.Rows)
	total := 0
	for _, c := range chars {
		total += c
	}

	widths := make([]float64, len(chars))
	if total == 0 {
		return widths
	}
	var sum float64
	for i, c := range chars {
		widths[i] = max(available*float64(c)/float64(total), pdfMinColumnW)
		sum += widths[i]
	}
	if sum <= available {
		return widths
	}

	// Take the overflow from the room each column has above the floor.
	floor := min(pdfMinColumnW, available/float64(len(widths)))
	excess := sum - available
	room := sum - floor*float64(len(widths))
	for i := range widths {
		widths[i] -= excess * (widths[i] - floor) / room
	}

	return widths
}

// truncate shortens UTF-8 text with an ellipsis until its translated form
// fits into width, and returns the translated result. Runes are cut before
// translation since tr yields single-byte cp1252.
func truncate(pdf *fpdf.Fpdf, tr func(string) string, text string, width float64) string {
	if out := tr(text); pdf.GetStringWidth(out) <= width {
		return out
	}

	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+pdfEllipsis)) > width {
		runes = runes[:len(runes)-1]
	}

	return tr(string(runes) + pdfEllipsis)
}
