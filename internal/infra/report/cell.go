// Package report renders report tables as CSV, xlsx and PDF documents.
package report

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// DateLayout is how dates appear in every report format.
const DateLayout = "02 January 2006"

// FormatCell turns a table cell into the text shown in a report.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}

		return *val
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(DateLayout)
	case *time.Time:
		if val == nil {
			return ""
		}

		return val.Format(DateLayout)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// columnWidths returns the widest cell of every column, in characters.
func columnWidths(headers []string, rows [][]any) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := utf8.RuneCountInString(FormatCell(row[i])); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return widths
}
