// =============================================================================
// Quote Scraper - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has
// a default that matches the vendor quote template, so the tool runs without
// any file at all. Command-line flags are applied on top of the loaded values
// by the cmd package.
//
// EXAMPLE (quotescraper.yaml):
//   file_pattern: "*.pdf"
//   output_dir: ""              # empty = write next to the quotes
//   xlsx_file: extracted_quotes.xlsx
//   csv_file: extracted_quotes.csv
//   sheet_name: Sheet1
//   log_level: info
//   parser:
//     section_start_markers: ["PARTS QUOTE"]
//     section_end_markers: ["LEAD TIME", "Net Order:"]
//     price_ceiling: 10000
//
// =============================================================================

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/quote-scraper/internal/lineparser"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// FilePattern is the glob used to select quote documents in the input
	// folder. Matching is case-insensitive and non-recursive.
	// Default: "*.pdf"
	FilePattern string `yaml:"file_pattern"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is where the exported files are written.
	// Default: "" (the input folder)
	OutputDir string `yaml:"output_dir"`

	// XLSXFile is the spreadsheet file name.
	// Default: "extracted_quotes.xlsx"
	XLSXFile string `yaml:"xlsx_file"`

	// CSVFile is the delimited text file name.
	// Default: "extracted_quotes.csv"
	CSVFile string `yaml:"csv_file"`

	// SheetName is the name of the single worksheet.
	// Default: "Sheet1"
	SheetName string `yaml:"sheet_name"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of diagnostics on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// PARSER SETTINGS
	// =========================================================================

	// Parser holds the quote template markers and the price heuristic.
	Parser ParserConfig `yaml:"parser"`
}

// ParserConfig mirrors lineparser.Options.
type ParserConfig struct {
	// SectionStartMarkers open the parts section.
	// Default: ["PARTS QUOTE"]
	SectionStartMarkers []string `yaml:"section_start_markers"`

	// SectionEndMarkers end the parts section.
	// Default: ["LEAD TIME", "Net Order:"]
	SectionEndMarkers []string `yaml:"section_end_markers"`

	// PriceCeiling is the exclusive upper bound for unit prices when scanning
	// an EACH line right to left.
	// Default: 10000
	PriceCeiling float64 `yaml:"price_ceiling"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path returns
//     the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed, or validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	// Read the configuration file.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse the YAML.
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply default values.
	applyDefaults(&cfg)

	// Validate the configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.FilePattern == "" {
		cfg.FilePattern = "*.pdf"
	}
	if cfg.XLSXFile == "" {
		cfg.XLSXFile = "extracted_quotes.xlsx"
	}
	if cfg.CSVFile == "" {
		cfg.CSVFile = "extracted_quotes.csv"
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	def := lineparser.DefaultOptions()
	if len(cfg.Parser.SectionStartMarkers) == 0 {
		cfg.Parser.SectionStartMarkers = def.SectionStartMarkers
	}
	if len(cfg.Parser.SectionEndMarkers) == 0 {
		cfg.Parser.SectionEndMarkers = def.SectionEndMarkers
	}
	if cfg.Parser.PriceCeiling == 0 {
		cfg.Parser.PriceCeiling = def.PriceCeiling
	}
}

// Validate checks the configuration after defaults were applied.
func (c *Config) Validate() error {
	if _, err := filepath.Match(c.FilePattern, "quote.pdf"); err != nil {
		return fmt.Errorf("file_pattern %q: %w", c.FilePattern, err)
	}

	if !strings.HasSuffix(strings.ToLower(c.XLSXFile), ".xlsx") {
		return fmt.Errorf("xlsx_file %q must end in .xlsx", c.XLSXFile)
	}
	if !strings.HasSuffix(strings.ToLower(c.CSVFile), ".csv") {
		return fmt.Errorf("csv_file %q must end in .csv", c.CSVFile)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.Parser.PriceCeiling <= 0 {
		return fmt.Errorf("parser.price_ceiling must be positive, got %v", c.Parser.PriceCeiling)
	}
	if !hasNonEmpty(c.Parser.SectionStartMarkers) {
		return fmt.Errorf("parser.section_start_markers must contain a marker")
	}
	if !hasNonEmpty(c.Parser.SectionEndMarkers) {
		return fmt.Errorf("parser.section_end_markers must contain a marker")
	}

	return nil
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// ParserOptions converts the parser section for lineparser.New.
func (c *Config) ParserOptions() lineparser.Options {
	return lineparser.Options{
		SectionStartMarkers: c.Parser.SectionStartMarkers,
		SectionEndMarkers:   c.Parser.SectionEndMarkers,
		PriceCeiling:        c.Parser.PriceCeiling,
	}
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}

// ResolveOutputDir returns the configured output directory, or the input
// folder when none is set.
func (c *Config) ResolveOutputDir(inputDir string) string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return inputDir
}

func hasNonEmpty(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
