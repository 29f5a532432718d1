// Package render — PDF renderer.
// Lays out the blocks of a normalized post with gofpdf: headings with
// variable font sizes, paragraphs, lists, blockquotes and preformatted text.
// Images are not rendered.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a post as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts normalized HTML into PDF bytes.
func (r *PDFRenderer) Render(html string, meta core.PostMetadata) ([]byte, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 text before writing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if meta.Source != "" && meta.Source != "-" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, b := range collectBlocks(doc) {
		switch b.Kind {
		case blockHeading:
			renderHeading(pdf, tr(b.Text), b.Level)
		case blockList, blockOrderedList:
			pdf.SetFont("Helvetica", "", 10)
			for i, item := range b.Items {
				marker := "• "
				if b.Kind == blockOrderedList {
					marker = fmt.Sprintf("%d. ", i+1)
				}
				pdf.SetX(pdf.GetX() + 4)
				pdf.MultiCell(0, 5, tr(marker+item), "", "L", false)
			}
			pdf.Ln(3)
		case blockQuote:
			left, _, _, _ := pdf.GetMargins()
			pdf.SetLeftMargin(left + 8)
			pdf.SetX(left + 8)
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
			pdf.SetLeftMargin(left)
			pdf.Ln(3)
		case blockPre:
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(b.Text), "", "L", true)
			pdf.Ln(3)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
			pdf.Ln(3)
		}
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

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}
