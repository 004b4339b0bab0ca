package report

import (
	"bytes"
	"encoding/csv"

	"contacts/internal/domain/service"
	"contacts/internal/errors"
)

type csvWriter struct{}

// NewCSVWriter returns a writer producing RFC 4180 CSV with a header row.
func NewCSVWriter() service.CSVWriter {
	return &csvWriter{}
}

// WriteCSV writes the header row followed by one record per table row.
func (w *csvWriter) WriteCSV(table *service.Table) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(table.Headers); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}

	record := make([]string, len(table.Headers))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = FormatCell(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return nil, errors.Wrap(err, "write csv record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}

	return buf.Bytes(), nil
}
