package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// renderCSV encodes the table as RFC 4180 CSV: one header row with the
// column names, then one line per row. encoding/csv handles quoting of
// embedded commas, quotes, and newlines.
func renderCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("report.renderCSV: header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range t.Columns {
			record[i] = formatCell(row[i])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("report.renderCSV: row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report.renderCSV: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCell converts a scalar cell value to its display string.
// Floats use the shortest representation that round-trips, so 50 renders as
// "50" and 12.5 as "12.5". Dates render as calendar dates.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	case time.Time:
		return c.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", c)
	}
}
