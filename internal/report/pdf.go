package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfLetterhead is the fixed first line of every PDF report.
const pdfLetterhead = "Haycarb PLC - FuelTracker Report"

const (
	pdfMargin    = 14.0 // mm, all sides
	pdfRowHeight = 8.0  // mm per table row
	pdfFooterGap = 25.0 // mm reserved above the bottom edge for the footer
)

// renderPDF lays the table out as a paginated A4 document: letterhead and
// report title on the first page, a striped table whose header row repeats
// on every page, and a footer on every page with the export timestamp on the
// left and "Page X of Y" on the right. The total page count is only known
// after layout, so Y is written via fpdf's number-alias mechanism and
// substituted when the document is closed.
func renderPDF(t Table) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(t.Title, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AliasNbPages("") // register "{nb}" as the total-page placeholder
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin
	exportedAt := time.Now().Format("2006-01-02 15:04:05")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(usable/2, 10, "Exported on: "+exportedAt, "", 0, "L", false, 0, "")
		pdf.CellFormat(usable/2, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Letterhead and report title, first page only.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(usable, 8, pdfLetterhead, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(usable, 8, t.Title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := columnWidths(pdf, t, usable)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(46, 125, 50)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], pdfRowHeight, col, "", 0, "C", true, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}
	header()

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfFooterGap {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(0, 0, 0)
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for j := range t.Columns {
			pdf.CellFormat(widths[j], pdfRowHeight, formatCell(row[j]), "", 0, "C", fill, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report.renderPDF: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths sizes each column to its widest cell (header included) and
// scales the set to exactly fill the usable page width.
func columnWidths(pdf *fpdf.Fpdf, t Table, usable float64) []float64 {
	const pad = 4.0

	widths := make([]float64, len(t.Columns))
	pdf.SetFont("Helvetica", "B", 10)
	for i, col := range t.Columns {
		widths[i] = pdf.GetStringWidth(col) + pad
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range t.Rows {
		for i := range t.Columns {
			if w := pdf.GetStringWidth(formatCell(row[i])) + pad; w > widths[i] {
				widths[i] = w
			}
		}
	}

	var total float64
	for _, w := range widths {
		total += w
	}
	if total <= 0 {
		return widths
	}
	for i := range widths {
		widths[i] = widths[i] / total * usable
	}
	return widths
}
