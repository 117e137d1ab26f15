// =============================================================================
// Quote Scraper - Shared Types
// =============================================================================
//
// This package contains the item record and result table shared by the
// parser, the directory driver, and the exporters. Keeping them here avoids
// import cycles between those packages.
//
// COLUMN ORDER:
//   source_file, part_number, description, quantity, price
//
// =============================================================================

package types

import (
	"strconv"
)

// =============================================================================
// COLUMNS
// =============================================================================

// Column identifies one column of the result table.
type Column int

const (
	ColumnSourceFile Column = iota
	ColumnPartNumber
	ColumnDescription
	ColumnQuantity
	ColumnPrice
)

// AllColumns is the fixed output column order.
var AllColumns = []Column{
	ColumnSourceFile,
	ColumnPartNumber,
	ColumnDescription,
	ColumnQuantity,
	ColumnPrice,
}

// Header returns the column name written in output header rows.
func (c Column) Header() string {
	switch c {
	case ColumnSourceFile:
		return "source_file"
	case ColumnPartNumber:
		return "part_number"
	case ColumnDescription:
		return "description"
	case ColumnQuantity:
		return "quantity"
	case ColumnPrice:
		return "price"
	default:
		return "column_" + strconv.Itoa(int(c))
	}
}

// ColumnByHeader looks up a column by its header name.
func ColumnByHeader(header string) (Column, bool) {
	for _, c := range AllColumns {
		if c.Header() == header {
			return c, true
		}
	}
	return 0, false
}

// =============================================================================
// ITEM RECORD
// =============================================================================

// ItemRecord is one parsed quote line item.
type ItemRecord struct {
	// SourceFile is the base name of the document the item came from.
	// The parser leaves it empty; the directory driver fills it in.
	SourceFile string

	// PartNumber is always set on records that leave the parser.
	PartNumber string

	// Description is nil when no warehouse line was matched for the item.
	Description *string

	// Quantity is nil when the EACH line was missing or its quantity token
	// did not parse.
	Quantity *float64

	// Price is nil when no token on the EACH line qualified as a unit price.
	Price *float64
}

// Has reports whether the record carries a value for the column.
func (r ItemRecord) Has(col Column) bool {
	switch col {
	case ColumnSourceFile:
		return r.SourceFile != ""
	case ColumnPartNumber:
		return r.PartNumber != ""
	case ColumnDescription:
		return r.Description != nil
	case ColumnQuantity:
		return r.Quantity != nil
	case ColumnPrice:
		return r.Price != nil
	}
	return false
}

// Text renders the column value as text. Unset values render as "".
func (r ItemRecord) Text(col Column) string {
	switch col {
	case ColumnSourceFile:
		return r.SourceFile
	case ColumnPartNumber:
		return r.PartNumber
	case ColumnDescription:
		if r.Description != nil {
			return *r.Description
		}
	case ColumnQuantity:
		if r.Quantity != nil {
			return FormatNumber(*r.Quantity)
		}
	case ColumnPrice:
		if r.Price != nil {
			return FormatNumber(*r.Price)
		}
	}
	return ""
}

// Cell returns the column value typed for spreadsheet cells: string for
// text columns, float64 for numeric columns, nil when unset.
func (r ItemRecord) Cell(col Column) any {
	switch col {
	case ColumnQuantity:
		if r.Quantity != nil {
			return *r.Quantity
		}
		return nil
	case ColumnPrice:
		if r.Price != nil {
			return *r.Price
		}
		return nil
	case ColumnDescription:
		if r.Description != nil {
			return *r.Description
		}
		return nil
	}
	return r.Text(col)
}

// FormatNumber prints a float in its shortest decimal form (12, 45.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StringPtr and FloatPtr are small helpers for filling optional fields.
func StringPtr(s string) *string { return &s }

func FloatPtr(f float64) *float64 { return &f }

// =============================================================================
// RESULT TABLE
// =============================================================================

// ResultTable is the ordered aggregate of item records across documents.
type ResultTable struct {
	Items []ItemRecord
}

// Len returns the number of records.
func (t *ResultTable) Len() int {
	return len(t.Items)
}

// Empty reports whether the table holds no records.
func (t *ResultTable) Empty() bool {
	return len(t.Items) == 0
}

// Append adds records in order.
func (t *ResultTable) Append(items ...ItemRecord) {
	t.Items = append(t.Items, items...)
}

// Columns returns the output columns in fixed order, omitting any column
// that no record carries a value for. An empty table has no columns.
func (t *ResultTable) Columns() []Column {
	var cols []Column
	for _, c := range AllColumns {
		for _, item := range t.Items {
			if item.Has(c) {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

// Headers returns the header names for Columns().
func (t *ResultTable) Headers() []string {
	cols := t.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header()
	}
	return headers
}

// Rows renders every record as text cells in Columns() order.
func (t *ResultTable) Rows() [][]string {
	cols := t.Columns()
	rows := make([][]string, 0, len(t.Items))
	for _, item := range t.Items {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = item.Text(c)
		}
		rows = append(rows, row)
	}
	return rows
}
