package export

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/quote-scraper/internal/csvexport"
	"github.com/ginjaninja78/quote-scraper/internal/types"
	"github.com/ginjaninja78/quote-scraper/pkg/utils"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func table() *types.ResultTable {
	return &types.ResultTable{Items: []types.ItemRecord{
		{SourceFile: "q.pdf", PartNumber: "AB-1", Description: types.StringPtr("BOLT"), Quantity: types.FloatPtr(3), Price: types.FloatPtr(1.25)},
	}}
}

func TestExporter_Export(t *testing.T) {
	t.Run("writes both formats", func(t *testing.T) {
		dir := t.TempDir()
		targets := Targets{
			XLSXPath: filepath.Join(dir, "extracted_quotes.xlsx"),
			CSVPath:  filepath.Join(dir, "extracted_quotes.csv"),
		}

		out, err := New(quietLogger()).Export(table(), targets)

		require.NoError(t, err)
		require.NoError(t, out.Err())
		assert.Equal(t, []string{targets.XLSXPath, targets.CSVPath}, out.Written)
		assert.True(t, utils.FileExists(targets.XLSXPath))

		back, err := csvexport.Read(targets.CSVPath)
		require.NoError(t, err)
		assert.Equal(t, "AB-1", back.Items[0].PartNumber)
		assert.Equal(t, 1.25, *back.Items[0].Price)
	})

	t.Run("empty table writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		targets := Targets{
			XLSXPath: filepath.Join(dir, "extracted_quotes.xlsx"),
			CSVPath:  filepath.Join(dir, "extracted_quotes.csv"),
		}

		out, err := New(quietLogger()).Export(&types.ResultTable{}, targets)

		assert.ErrorIs(t, err, ErrNoItems)
		assert.Empty(t, out.Written)
		assert.False(t, utils.FileExists(targets.XLSXPath))
		assert.False(t, utils.FileExists(targets.CSVPath))
	})

	t.Run("a failing format does not stop the other", func(t *testing.T) {
		dir := t.TempDir()
		targets := Targets{
			XLSXPath: filepath.Join(dir, "locked", "extracted_quotes.xlsx"),
			CSVPath:  filepath.Join(dir, "extracted_quotes.csv"),
		}

		out, err := New(quietLogger()).Export(table(), targets)

		require.NoError(t, err)
		assert.Equal(t, []string{targets.CSVPath}, out.Written)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, FormatXLSX, out.Errors[0].Format)
		assert.True(t, utils.FileExists(targets.CSVPath))

		var ferr *FormatError
		require.True(t, errors.As(out.Err(), &ferr))
		assert.Equal(t, targets.XLSXPath, ferr.Path)
	})

	t.Run("both formats failing are both reported", func(t *testing.T) {
		e := New(quietLogger())
		boom := errors.New("file is open in another program")
		e.writeXLSX = func(string, string, *types.ResultTable) error { return boom }
		e.writeCSV = func(string, *types.ResultTable) error { return boom }

		out, err := e.Export(table(), Targets{XLSXPath: "a.xlsx", CSVPath: "a.csv"})

		require.NoError(t, err)
		assert.Empty(t, out.Written)
		require.Len(t, out.Errors, 2)
		assert.Equal(t, FormatCSV, out.Errors[1].Format)
		assert.ErrorIs(t, out.Err(), boom)
	})
}
