// =============================================================================
// Quote Scraper - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (quotescraper)
//   ├── extractCmd (quotescraper extract <folder>)
//   ├── showCmd    (quotescraper show <file>)
//   └── versionCmd (quotescraper version)
//
// The root command owns the global flags (--config, --verbose) and builds
// the configuration and the structured logger shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/quote-scraper/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
// Empty means built-in defaults.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "quotescraper",
	Short: "Quote Scraper - Extract line items from vendor quote PDFs",
	Long: `Quote Scraper reads every vendor quote PDF in a folder, pulls the line
items out of the parts section of each quote, and writes them to a single
spreadsheet and a CSV file.

Each line item carries the source file, part number, description, quantity
and unit price.

Example Usage:
  quotescraper extract ./quotes                     # Scan a folder and export
  quotescraper extract ./quotes --dry-run           # Preview without writing
  quotescraper extract ./quotes --config quote.yaml # Use a configuration file
  quotescraper show ./quotes/extracted_quotes.csv   # Preview an export`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: optional YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (default: built-in settings)",
	)

	// --verbose flag: debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.SilenceErrors = true
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig loads the configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the run logger. Every record carries the run identifier.
//
// PARAMETERS:
//   - w: Where log records are written (stderr in normal use).
//   - cfg: Supplies the log level. --verbose overrides it with debug.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString()), nil
}
