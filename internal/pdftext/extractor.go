// =============================================================================
// Quote Scraper - PDF Text Extractor
// =============================================================================
//
// This module turns a quote PDF into plain text, one output line per text
// row on the rendered page. Pages are joined with a newline so the last row
// of one page never runs into the first row of the next.
//
// Rows are rebuilt from the positioned glyphs of the page content, so every
// text positioning operator (Td, TD, T*, Tm) is honored. Glyphs whose
// baselines lie within RowTolerance of each other form one row; a row is
// read left to right. Adjacent glyphs are joined directly unless a visible
// gap separates them, which keeps tokens like F7300K-ZNC intact when the
// renderer splits them into several kerned runs.
//
// ERROR HANDLING:
//   Any failure to open or decode the document is returned as a
//   *DocumentReadError. Panics raised inside the PDF library on malformed
//   input are recovered and reported the same way.
//
// =============================================================================

package pdftext

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor produces the text of one document.
type Extractor interface {
	Extract(path string) (string, error)
}

// DocumentReadError reports a document that could not be opened or decoded.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// PDFExtractor extracts row-ordered text with ledongthuc/pdf.
type PDFExtractor struct {
	// RowTolerance is the largest baseline difference, in points, between
	// glyphs of the same row.
	RowTolerance float64

	// TouchTolerance is the largest horizontal gap, as a fraction of the
	// font size, at which two glyphs are joined without a space.
	TouchTolerance float64
}

// NewPDFExtractor returns an extractor with the default tolerances.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{RowTolerance: 2.0, TouchTolerance: 1.0 / 6}
}

// Extract opens the document, reads every page, and closes it again.
func (x *PDFExtractor) Extract(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &DocumentReadError{Path: path, Err: fmt.Errorf("malformed pdf: %v", r)}
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", &DocumentReadError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &DocumentReadError{Path: path, Err: err}
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", &DocumentReadError{Path: path, Err: err}
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows := x.groupRows(page.Content().Text)
		if len(rows) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for j, row := range rows {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(x.joinRow(row))
		}
	}

	return b.String(), nil
}

// =============================================================================
// ROW RECONSTRUCTION
// =============================================================================

// groupRows clusters glyphs by baseline, top row first, each row sorted left
// to right. Glyphs that share a position keep their content stream order.
func (x *PDFExtractor) groupRows(glyphs []pdf.Text) [][]pdf.Text {
	texts := make([]pdf.Text, 0, len(glyphs))
	for _, g := range glyphs {
		if g.S != "" {
			texts = append(texts, g)
		}
	}
	if len(texts) == 0 {
		return nil
	}

	sort.SliceStable(texts, func(i, j int) bool {
		return texts[i].Y > texts[j].Y
	})

	var rows [][]pdf.Text
	rowY := texts[0].Y
	current := []pdf.Text{texts[0]}
	for _, t := range texts[1:] {
		if math.Abs(rowY-t.Y) < x.RowTolerance {
			current = append(current, t)
			continue
		}
		rows = append(rows, current)
		rowY = t.Y
		current = []pdf.Text{t}
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X < row[j].X
		})
	}
	return rows
}

// joinRow concatenates the glyphs of one row, inserting a space where a
// visible gap separates them.
func (x *PDFExtractor) joinRow(row []pdf.Text) string {
	var b strings.Builder
	for i, t := range row {
		if i > 0 && !x.touches(row[i-1], t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
	}
	return b.String()
}

func (x *PDFExtractor) touches(prev, next pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(next.S, " ") {
		return true
	}
	if prev.FontSize <= 0 {
		return false
	}
	gap := next.X - (prev.X + advance(prev))
	return gap <= prev.FontSize*x.TouchTolerance
}

// advance is the horizontal extent of a glyph. Fonts without a Widths array
// report zero, and the library then places every glyph of a string at the
// same X, so half an em stands in for the missing width.
func advance(t pdf.Text) float64 {
	if t.W > 0 {
		return t.W
	}
	return t.FontSize / 2
}
