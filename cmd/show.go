// =============================================================================
// Quote Scraper - Show Command
// =============================================================================
//
// COMMAND USAGE:
//   quotescraper show <file.csv|file.xlsx>
//
// Reads a table written by 'extract' and prints the same preview.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/quote-scraper/internal/csvexport"
	"github.com/ginjaninja78/quote-scraper/internal/report"
	"github.com/ginjaninja78/quote-scraper/internal/types"
	"github.com/ginjaninja78/quote-scraper/internal/xlsxexport"
)

// showCmd represents the 'show' command.
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Preview a previously exported .csv or .xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readExport(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d items in %s\n", table.Len(), filepath.Base(args[0]))
		report.Preview(out, table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// readExport picks the reader by file extension.
func readExport(path string) (*types.ResultTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csvexport.Read(path)
	case ".xlsx":
		return xlsxexport.Read(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", filepath.Ext(path))
	}
}
