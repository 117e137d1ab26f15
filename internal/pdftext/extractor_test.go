package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/quote-scraper/internal/lineparser"
	"github.com/ginjaninja78/quote-scraper/internal/pdftext/pdftest"
)

var quoteLines = []string{
	"PARTS QUOTE",
	"F7300K-ZNC",
	"Whse: 01 ANCHOR BOLT",
	"EACH 12 12 0 45.50 546.00",
	"LEAD TIME",
}

func writePDF(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quote.pdf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestPDFExtractor_Extract(t *testing.T) {
	x := NewPDFExtractor()

	t.Run("lines positioned with Td", func(t *testing.T) {
		path := writePDF(t, pdftest.Build(pdftest.Lines(quoteLines...)))

		text, err := x.Extract(path)

		require.NoError(t, err)
		assert.Equal(t,
			"PARTS QUOTE\nF7300K-ZNC\nWhse: 01 ANCHOR BOLT\nEACH 12 12 0 45.50 546.00\nLEAD TIME",
			text)
	})

	t.Run("font without widths", func(t *testing.T) {
		path := writePDF(t, pdftest.BuildWithoutWidths(pdftest.Lines(quoteLines...)))

		text, err := x.Extract(path)

		require.NoError(t, err)
		assert.Equal(t,
			"PARTS QUOTE\nF7300K-ZNC\nWhse: 01 ANCHOR BOLT\nEACH 12 12 0 45.50 546.00\nLEAD TIME",
			text)
	})

	t.Run("kerned runs are rejoined", func(t *testing.T) {
		content := "BT /F1 10 Tf 72 720 Td (PARTS QUOTE) Tj 0 -14 Td [(F7300K) -15 (-ZNC)] TJ 0 -14 Td (LEAD TIME) Tj ET"
		for name, data := range map[string][]byte{
			"widths":    pdftest.Build(content),
			"no widths": pdftest.BuildWithoutWidths(content),
		} {
			t.Run(name, func(t *testing.T) {
				text, err := x.Extract(writePDF(t, data))

				require.NoError(t, err)
				assert.Equal(t, "PARTS QUOTE\nF7300K-ZNC\nLEAD TIME", text)
			})
		}
	})

	t.Run("separately placed columns are spaced", func(t *testing.T) {
		content := "BT /F1 10 Tf 72 720 Td (EACH) Tj 60 0 Td (12) Tj 40 0 Td (546.00) Tj ET"

		text, err := x.Extract(writePDF(t, pdftest.Build(content)))

		require.NoError(t, err)
		assert.Equal(t, "EACH 12 546.00", text)
	})

	t.Run("rows follow the page, not the stream", func(t *testing.T) {
		content := "BT /F1 10 Tf 72 706 Td (SECOND) Tj 0 14 Td (FIRST) Tj ET"

		text, err := x.Extract(writePDF(t, pdftest.Build(content)))

		require.NoError(t, err)
		assert.Equal(t, "FIRST\nSECOND", text)
	})

	t.Run("pages are separated by a line break", func(t *testing.T) {
		data := pdftest.Build(
			pdftest.Lines("PARTS QUOTE", "F7300K-ZNC"),
			pdftest.Lines("Whse: 01 BOLT", "LEAD TIME"),
		)

		text, err := x.Extract(writePDF(t, data))

		require.NoError(t, err)
		assert.Equal(t, "PARTS QUOTE\nF7300K-ZNC\nWhse: 01 BOLT\nLEAD TIME", text)
	})

	t.Run("extracted text parses into records", func(t *testing.T) {
		text, err := x.Extract(writePDF(t, pdftest.Build(pdftest.Lines(quoteLines...))))
		require.NoError(t, err)

		items := lineparser.New(lineparser.DefaultOptions()).ParseText(text)

		require.Len(t, items, 1)
		assert.Equal(t, "F7300K-ZNC", items[0].PartNumber)
		assert.Equal(t, "ANCHOR BOLT", *items[0].Description)
		assert.Equal(t, 12.0, *items[0].Quantity)
		assert.Equal(t, 546.0, *items[0].Price)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.pdf")

		_, err := x.Extract(path)

		var readErr *DocumentReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, path, readErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("not a pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is plain text, not a PDF"), 0o644))

		text, err := x.Extract(path)

		var readErr *DocumentReadError
		require.True(t, errors.As(err, &readErr))
		assert.Empty(t, text)
		assert.Contains(t, err.Error(), "notes.pdf")
	})
}

func TestPDFExtractor_groupRows(t *testing.T) {
	x := NewPDFExtractor()

	glyphs := []pdf.Text{
		{S: "B", X: 20, Y: 700},
		{S: "A", X: 10, Y: 700.5},
		{S: "", X: 5, Y: 700},
		{S: "C", X: 10, Y: 686},
	}

	rows := x.groupRows(glyphs)

	require.Len(t, rows, 2)
	require.Len(t, rows[0], 2)
	assert.Equal(t, "A", rows[0][0].S)
	assert.Equal(t, "B", rows[0][1].S)
	assert.Equal(t, "C", rows[1][0].S)
	assert.Nil(t, x.groupRows(nil))
}

func TestPDFExtractor_joinRow(t *testing.T) {
	x := NewPDFExtractor()

	t.Run("spaces separated runs", func(t *testing.T) {
		row := []pdf.Text{
			{S: "EACH", X: 10, W: 24, FontSize: 10},
			{S: "12", X: 60, W: 10, FontSize: 10},
			{S: "45.50", X: 120, W: 25, FontSize: 10},
		}
		assert.Equal(t, "EACH 12 45.50", x.joinRow(row))
	})

	t.Run("glues touching runs", func(t *testing.T) {
		row := []pdf.Text{
			{S: "F7300K", X: 10, W: 36, FontSize: 10},
			{S: "-ZNC", X: 46.5, W: 20, FontSize: 10},
		}
		assert.Equal(t, "F7300K-ZNC", x.joinRow(row))
	})

	t.Run("explicit spaces are not doubled", func(t *testing.T) {
		row := []pdf.Text{
			{S: "Whse:", X: 10, W: 30, FontSize: 10},
			{S: " ", X: 80, W: 6, FontSize: 10},
			{S: "01", X: 120, W: 12, FontSize: 10},
		}
		assert.Equal(t, "Whse: 01", x.joinRow(row))
	})

	t.Run("unknown font size falls back to spaces", func(t *testing.T) {
		row := []pdf.Text{{S: "Whse:"}, {S: "01"}, {S: "BOLT"}}
		assert.Equal(t, "Whse: 01 BOLT", x.joinRow(row))
	})

	t.Run("empty row", func(t *testing.T) {
		assert.Equal(t, "", x.joinRow(nil))
	})
}
