// =============================================================================
// Quote Scraper - Extract Command
// =============================================================================
//
// This file defines the 'extract' command, which runs the whole pipeline
// over one folder of quote documents.
//
// COMMAND USAGE:
//   quotescraper extract <folder> [flags]
//
// FLAGS:
//   --output-dir : Write the exports here instead of the input folder
//   --dry-run    : Parse and preview without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover quote documents in the folder
//   3. For each document (one at a time, in name order):
//      a. Extract the text
//      b. Parse the parts section into item records
//   4. Print the item count and a preview of every record
//   5. Write the spreadsheet and the CSV file
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/quote-scraper/internal/export"
	"github.com/ginjaninja78/quote-scraper/internal/lineparser"
	"github.com/ginjaninja78/quote-scraper/internal/pdftext"
	"github.com/ginjaninja78/quote-scraper/internal/report"
	"github.com/ginjaninja78/quote-scraper/internal/scraper"
	"github.com/ginjaninja78/quote-scraper/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputDir overrides the configured output directory.
var outputDir string

// dryRun skips writing output files.
var dryRun bool

// =============================================================================
// EXTRACT COMMAND DEFINITION
// =============================================================================

// extractCmd represents the 'extract' command.
var extractCmd = &cobra.Command{
	Use:   "extract <folder>",
	Short: "Extract line items from every quote PDF in a folder",
	Long: `The extract command reads every PDF in the folder, parses the line items in
the parts section of each quote, and writes them all to extracted_quotes.xlsx
and extracted_quotes.csv in the same folder.

A document that cannot be read is reported and skipped; the other documents
are still processed. If one output format cannot be written, the other is
still attempted and the command exits with an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Directory for the output files (default: the input folder)",
	)

	extractCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse and preview without writing output files",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runExtract scans folder and exports the aggregate table.
func runExtract(cmd *cobra.Command, folder string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scanning folder: %s\n", folder)
	fmt.Fprintln(out, strings.Repeat("-", 80))

	files := utils.NewFileManager(folder, cfg.ResolveOutputDir(folder))
	driver := scraper.New(
		files,
		pdftext.NewPDFExtractor(),
		lineparser.New(cfg.ParserOptions()),
		scraper.Options{
			Pattern:  cfg.FilePattern,
			Progress: out,
			Logger:   logger,
		},
	)

	result, err := driver.Run()
	if err != nil {
		return err
	}

	if result.Failed > 0 {
		fmt.Fprintf(out, "\nSkipped %d unreadable document(s)\n", result.Failed)
	}

	if result.Table.Empty() {
		fmt.Fprintln(out, "No items extracted. Please check the PDF format.")
		return nil
	}

	fmt.Fprintf(out, "\nExtracted %d items from quotes\n", result.Table.Len())
	fmt.Fprintln(out, "\nPreview:")
	report.Preview(out, &result.Table)

	if dryRun {
		logger.Info("export.skipped", "reason", "dry-run")
		return nil
	}

	if err := files.EnsureOutputDir(); err != nil {
		return err
	}

	outcome, err := export.New(logger).Export(&result.Table, export.Targets{
		XLSXPath:  files.OutputPath(cfg.XLSXFile),
		CSVPath:   files.OutputPath(cfg.CSVFile),
		SheetName: cfg.SheetName,
	})
	if errors.Is(err, export.ErrNoItems) {
		fmt.Fprintln(out, "No items extracted. Please check the PDF format.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, path := range outcome.Written {
		fmt.Fprintf(out, "Data saved to: %s\n", path)
	}
	return outcome.Err()
}
