// Package report renders in-memory tables into downloadable artifacts.
// It is pure computation: no I/O beyond the returned byte slice, no
// dependency on the HTTP or storage layers. The export handler builds a
// Table from already-fetched data and picks a Format; this package does the
// rest.
package report

import (
	"errors"
	"fmt"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// ErrNoData is returned when an export is attempted with zero rows.
// Handlers surface it as a user-visible message and produce no artifact.
var ErrNoData = errors.New("no data to export")

// Format identifies one of the supported export encodings.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a user-supplied format string.
// Unrecognized values are a validation error; no partial artifact is ever
// produced for them.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, s)
	}
}

// ContentType returns the MIME type to serve the rendered artifact with.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Extension returns the file extension (without dot) for download filenames.
func (f Format) Extension() string {
	return string(f)
}

// Table is an ordered, rectangular report: a title, a fixed column order,
// and one row of scalar cells per record. Column order is preserved exactly
// as built, in every output format.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// Render encodes the table in the given format and returns the artifact
// bytes. It is all-or-nothing: on any error no bytes are returned.
// An empty table yields ErrNoData regardless of format.
func Render(t Table, format Format) ([]byte, error) {
	if len(t.Rows) == 0 {
		return nil, ErrNoData
	}
	switch format {
	case FormatCSV:
		return renderCSV(t)
	case FormatJSON:
		return renderJSON(t)
	case FormatPDF:
		return renderPDF(t)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, string(format))
	}
}
