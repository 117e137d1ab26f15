// =============================================================================
// Quote Scraper - Console Preview
// =============================================================================
//
// This module renders a result table as an aligned text grid for the
// terminal. Every record is shown; the table is never truncated.
//
// OUTPUT:
//   +-------------+-------------+----------------------+----------+-------+
//   | source_file | part_number | description          | quantity | price |
//   +-------------+-------------+----------------------+----------+-------+
//   | q1.pdf      | F7300K-ZNC  | ANCHOR BOLT KIT ZINC | 12       | 546   |
//   +-------------+-------------+----------------------+----------+-------+
//
// =============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/ginjaninja78/quote-scraper/internal/types"
)

// Preview writes the whole table to w. An empty table writes a single
// "(no rows)" line.
func Preview(w io.Writer, table *types.ResultTable) {
	if table == nil || table.Empty() {
		fmt.Fprintln(w, "(no rows)")
		return
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(table.Headers())
	// Keep the column names exactly as they appear in the exported files.
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.AppendBulk(table.Rows())
	tw.Render()
}
