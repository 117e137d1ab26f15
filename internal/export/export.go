// Package export writes the aggregate result table in both output formats.
// Each format is attempted independently; a failure in one never prevents
// the other.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/quote-scraper/internal/csvexport"
	"github.com/ginjaninja78/quote-scraper/internal/types"
	"github.com/ginjaninja78/quote-scraper/internal/xlsxexport"
)

// ErrNoItems is returned when the table is empty. Nothing is written.
var ErrNoItems = errors.New("no items extracted")

// Format names an output format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatError reports a failed write for one format.
type FormatError struct {
	Format Format
	Path   string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("failed to write %s output %s: %v", e.Format, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Targets are the destination paths per format.
type Targets struct {
	XLSXPath  string
	CSVPath   string
	SheetName string
}

// Outcome lists the files written and the per-format failures.
type Outcome struct {
	Written []string
	Errors  []*FormatError
}

// Err joins the per-format failures, or returns nil.
func (o Outcome) Err() error {
	errs := make([]error, len(o.Errors))
	for i, e := range o.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Exporter writes result tables.
type Exporter struct {
	logger *slog.Logger

	// writers are swapped in tests.
	writeXLSX func(path, sheet string, table *types.ResultTable) error
	writeCSV  func(path string, table *types.ResultTable) error
}

// New returns an exporter backed by excelize and gocsv.
func New(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		logger:    logger,
		writeXLSX: xlsxexport.Write,
		writeCSV:  csvexport.Write,
	}
}

// Export writes the spreadsheet, then the CSV file. It returns ErrNoItems
// for an empty table.
func (e *Exporter) Export(table *types.ResultTable, targets Targets) (Outcome, error) {
	var out Outcome
	if table == nil || table.Empty() {
		return out, ErrNoItems
	}

	e.run(&out, FormatXLSX, targets.XLSXPath, table.Len(), func() error {
		return e.writeXLSX(targets.XLSXPath, targets.SheetName, table)
	})
	e.run(&out, FormatCSV, targets.CSVPath, table.Len(), func() error {
		return e.writeCSV(targets.CSVPath, table)
	})

	return out, nil
}

func (e *Exporter) run(out *Outcome, format Format, path string, rows int, write func() error) {
	start := time.Now()
	if err := write(); err != nil {
		ferr := &FormatError{Format: format, Path: path, Err: err}
		out.Errors = append(out.Errors, ferr)
		e.logger.Error("export."+string(format)+".failed", "path", path, "error", err)
		return
	}
	out.Written = append(out.Written, path)
	e.logger.Info("export."+string(format)+".ok",
		"path", path,
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
