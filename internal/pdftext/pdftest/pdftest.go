// Package pdftest builds small uncompressed PDF documents for tests.
//
// Every page uses one Type1 font resource named /F1 (Courier, WinAnsi).
// With widths enabled each glyph advances 600/1000 of the font size, so
// glyph positions behave the way they do in real documents. Without widths
// the font dictionary matches the bare fonts some generators emit.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// FontSize is the size selected by Lines.
const FontSize = 10

// Leading is the baseline distance between lines written by Lines.
const Leading = 14

// Lines returns a content stream that prints each line at the left margin,
// one below the other, positioning them with Td.
func Lines(lines ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BT /F1 %d Tf 72 720 Td", FontSize)
	for i, line := range lines {
		if i > 0 {
			fmt.Fprintf(&b, " 0 -%d Td", Leading)
		}
		fmt.Fprintf(&b, " (%s) Tj", Escape(line))
	}
	b.WriteString(" ET")
	return b.String()
}

// Escape quotes a string for use inside a PDF literal string.
func Escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// Build returns a document with one page per content stream and a font
// that carries glyph widths.
func Build(pages ...string) []byte {
	return build(true, pages)
}

// BuildWithoutWidths is Build with a font dictionary that has no Widths.
func BuildWithoutWidths(pages ...string) []byte {
	return build(false, pages)
}

// WriteFile writes Build(pages...) to path.
func WriteFile(path string, pages ...string) error {
	return os.WriteFile(path, Build(pages...), 0o644)
}

// Object numbers: 1 catalog, 2 page tree, 3 font, then a page and its
// content stream for each page.
func build(widths bool, pages []string) []byte {
	var objects []string

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		fontDict(widths),
	)

	for i, content := range pages {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func fontDict(widths bool) string {
	dict := "<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding"
	if widths {
		w := make([]string, 126-32+1)
		for i := range w {
			w[i] = "600"
		}
		dict += fmt.Sprintf(" /FirstChar 32 /LastChar 126 /Widths [%s]", strings.Join(w, " "))
	}
	return dict + " >>"
}
