// Package render — PDF renderer.
// Lays blocks out with gofpdf using the note's typography tokens, so dense
// notes come out in smaller type with tighter leading.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/typography"
)

const (
	ptPerRem = 12.0
	ptPerPx  = 0.75
	margin   = 48.0
	indentPt = 14.0
)

// PDFRenderer renders a note as a PDF document.
type PDFRenderer struct {
	PageSize string
}

// NewPDFRenderer creates a PDFRenderer for the given page size
// (A4, A5, Letter or Legal). An empty size means A4.
func NewPDFRenderer(pageSize string) *PDFRenderer {
	if pageSize == "" {
		pageSize = "A4"
	}
	return &PDFRenderer{PageSize: pageSize}
}

// Render lays out the document's blocks and returns the PDF bytes.
func (r *PDFRenderer) Render(doc core.Document) ([]byte, error) {
	scale := scaleFor(doc)

	pdf := gofpdf.New("P", "pt", r.PageSize, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Meta.Title != "" {
		tok := scale.TokenFor(core.CategoryHeading1)
		size := pointSize(tok)
		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, size*tok.LineHeight, tr(doc.Meta.Title), "", "L", false)
		pdf.Ln(size * tok.Spacing)
	}

	for _, b := range doc.Blocks {
		tok := scale.TokenFor(typography.CategoryOf(b.Type))
		size := pointSize(tok)
		lineH := size * tok.LineHeight
		left, _, _, _ := pdf.GetMargins()

		switch b.Type {
		case core.Heading1, core.Heading2, core.Heading3:
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, lineH, tr(b.Content), "", "L", false)
		case core.Code:
			pdf.SetFont("Courier", "", size)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, lineH, tr(b.Content), "", "L", true)
		case core.Blockquote:
			pdf.SetFont("Helvetica", "I", size)
			pdf.SetTextColor(90, 90, 90)
			pdf.SetX(left + indentPt)
			pdf.MultiCell(0, lineH, tr(b.Content), "L", "L", false)
			pdf.SetTextColor(0, 0, 0)
		case core.Divider:
			y := pdf.GetY() + lineH/2
			w, _ := pdf.GetPageSize()
			pdf.SetDrawColor(180, 180, 180)
			pdf.Line(left, y, w-margin, y)
			pdf.Ln(lineH)
		case core.Bullet, core.Numbered, core.Todo:
			pdf.SetFont("Helvetica", "", size)
			pdf.SetX(left + float64(b.IndentLevel)*indentPt)
			pdf.MultiCell(0, lineH, tr(listMarker(b)+b.Content), "", "L", false)
		case core.Tag:
			pdf.SetFont("Helvetica", "", size*0.85)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, lineH, tr("#"+b.Content), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		default:
			pdf.SetFont("Helvetica", "", size)
			pdf.MultiCell(0, lineH, tr(b.Content), "", "L", false)
		}
		pdf.Ln(size * tok.Spacing / 2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// pointSize converts a token size to points.
func pointSize(tok core.Token) float64 {
	if tok.Unit == "rem" {
		return tok.Size * ptPerRem
	}
	return tok.Size * ptPerPx
}

func listMarker(b core.Block) string {
	switch b.Type {
	case core.Numbered:
		return strconv.Itoa(b.Number) + ". "
	case core.Todo:
		if b.Checked {
			return "[x] "
		}
		return "[ ] "
	default:
		return "• "
	}
}
