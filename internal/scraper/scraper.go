// =============================================================================
// Quote Scraper - Directory Driver
// =============================================================================
//
// This module runs the extraction pipeline over every quote document in a
// folder and aggregates the item records into one table.
//
// PIPELINE (per document, strictly one at a time):
//   1. Print a progress line
//   2. Extract the document text
//   3. Parse the lines into item records
//   4. Tag each record with the document's file name
//   5. Append the records to the aggregate table
//
// ERROR HANDLING:
//   A document that cannot be read is logged and skipped; it contributes no
//   records and the run continues. Only an unreadable folder stops the run.
//
// =============================================================================

package scraper

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/quote-scraper/internal/lineparser"
	"github.com/ginjaninja78/quote-scraper/internal/pdftext"
	"github.com/ginjaninja78/quote-scraper/internal/types"
	"github.com/ginjaninja78/quote-scraper/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// DocumentResult represents the outcome of processing a single document.
type DocumentResult struct {
	// Path is the document that was processed.
	Path string

	// Items is the number of records the document contributed.
	Items int

	// Error is set when the document could not be read.
	Error error

	// Duration is the time spent on the document.
	Duration time.Duration
}

// Report is the outcome of a whole folder run.
type Report struct {
	// Table holds every record in enumeration order.
	Table types.ResultTable

	// Documents holds one result per discovered document.
	Documents []DocumentResult

	// Failed is the number of documents that could not be read.
	Failed int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// =============================================================================
// DRIVER
// =============================================================================

// Driver processes a folder of quote documents.
type Driver struct {
	files     *utils.FileManager
	pattern   string
	extractor pdftext.Extractor
	parser    *lineparser.Parser
	progress  io.Writer
	logger    *slog.Logger
}

// Options configures a Driver.
type Options struct {
	// Pattern selects documents in the folder. Default: "*.pdf".
	Pattern string

	// Progress receives one "Processing: <name>" line per document.
	// Nil discards progress output.
	Progress io.Writer

	// Logger receives diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// New creates a Driver.
func New(files *utils.FileManager, extractor pdftext.Extractor, parser *lineparser.Parser, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	return &Driver{
		files:     files,
		pattern:   opts.Pattern,
		extractor: extractor,
		parser:    parser,
		progress:  opts.Progress,
		logger:    opts.Logger,
	}
}

// Run processes every matching document in the input folder.
//
// RETURNS:
//   - A Report with the aggregate table and per-document results.
//   - An error only if the folder itself cannot be read.
func (d *Driver) Run() (*Report, error) {
	start := time.Now()

	docs, err := d.files.DiscoverDocuments(d.pattern)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("scan.discovered", "folder", d.files.InputDir, "documents", len(docs))

	report := &Report{Documents: make([]DocumentResult, 0, len(docs))}
	for _, path := range docs {
		items, result := d.processDocument(path)
		report.Documents = append(report.Documents, result)
		if result.Error != nil {
			report.Failed++
			continue
		}
		report.Table.Append(items...)
	}

	report.Elapsed = time.Since(start)
	d.logger.Info("scan.ok",
		"folder", d.files.InputDir,
		"documents", len(docs),
		"failed", report.Failed,
		"items", report.Table.Len(),
		"elapsed_ms", report.Elapsed.Milliseconds(),
	)
	return report, nil
}

// processDocument extracts and parses one document. A failure yields no
// records.
func (d *Driver) processDocument(path string) ([]types.ItemRecord, DocumentResult) {
	start := time.Now()
	name := filepath.Base(path)
	result := DocumentResult{Path: path}

	fmt.Fprintf(d.progress, "Processing: %s\n", name)

	text, err := d.extractor.Extract(path)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		d.logger.Error("document.read_failed", "file", name, "error", err)
		return nil, result
	}

	items := d.parser.ParseText(text)
	for i := range items {
		items[i].SourceFile = name
	}

	result.Items = len(items)
	result.Duration = time.Since(start)
	d.logger.Debug("document.ok", "file", name, "items", len(items), "elapsed_ms", result.Duration.Milliseconds())
	return items, result
}
