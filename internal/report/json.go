package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// renderJSON encodes the table as a pretty-printed array of objects, one per
// row. encoding/json sorts map keys alphabetically, which would destroy the
// report's column order, so objects are assembled by hand with each value
// marshaled individually.
func renderJSON(t Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, row := range t.Rows {
		buf.WriteString("  {\n")
		for j, col := range t.Columns {
			key, err := json.Marshal(col)
			if err != nil {
				return nil, fmt.Errorf("report.renderJSON: column %q: %w", col, err)
			}
			val, err := json.Marshal(row[j])
			if err != nil {
				return nil, fmt.Errorf("report.renderJSON: column %q: %w", col, err)
			}
			buf.WriteString("    ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
			if j < len(t.Columns)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("  }")
		if i < len(t.Rows)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
