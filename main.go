// =============================================================================
// Quote Scraper - Main Entry Point
// =============================================================================
//
// USAGE:
//   quotescraper extract <folder>  - Extract line items from every quote PDF
//   quotescraper show <file>       - Preview a previously exported table
//   quotescraper version           - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Extraction, parsing and export logic
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/quote-scraper/cmd"
)

func main() {
	cmd.Execute()
}
