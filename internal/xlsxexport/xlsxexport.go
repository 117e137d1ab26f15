// =============================================================================
// Quote Scraper - XLSX Export Module
// =============================================================================
//
// This module writes the result table to a single-sheet workbook and reads
// such a workbook back.
//
// SHEET LAYOUT:
//
//   | A           | B           | C                    | D        | E     |
//   |-------------|-------------|----------------------|----------|-------|
//   | source_file | part_number | description          | quantity | price |
//   | q1.pdf      | F7300K-ZNC  | ANCHOR BOLT KIT ZINC | 12       | 546   |
//
//   Row 1 holds the column names; data starts on row 2. Quantity and price
//   are numeric cells. Unset values are left blank. Columns that no record
//   carries are left out.
//
// =============================================================================

package xlsxexport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/quote-scraper/internal/types"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Sheet1"

// columnWidths sets readable widths for the text-heavy columns.
var columnWidths = map[types.Column]float64{
	types.ColumnSourceFile:  28,
	types.ColumnPartNumber:  20,
	types.ColumnDescription: 48,
	types.ColumnQuantity:    10,
	types.ColumnPrice:       12,
}

// =============================================================================
// WRITER
// =============================================================================

// Write creates (or overwrites) the workbook at path.
//
// PARAMETERS:
//   - path: The destination .xlsx file.
//   - sheet: The worksheet name. Empty uses DefaultSheetName.
//   - table: The records to write.
//
// RETURNS:
//   - An error if any cell cannot be set or the file cannot be saved.
func Write(path, sheet string, table *types.ResultTable) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with a single "Sheet1".
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	cols := table.Columns()
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidths[col]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, item := range table.Items {
		for i, col := range cols {
			value := item.Cell(col)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// =============================================================================
// READER
// =============================================================================

// Read loads a previously exported workbook from its first sheet.
func Read(path string) (*types.ResultTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook sheet %q is empty", sheetName)
	}

	// Map header positions to columns.
	positions := make(map[types.Column]int)
	for i, h := range rows[0] {
		if col, ok := types.ColumnByHeader(strings.TrimSpace(h)); ok {
			positions[col] = i
		}
	}
	if _, ok := positions[types.ColumnPartNumber]; !ok {
		return nil, fmt.Errorf("workbook has no %s column", types.ColumnPartNumber.Header())
	}

	table := &types.ResultTable{}
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if isRowEmpty(row) {
			continue
		}

		item, err := parseRow(row, positions)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", r+1, err)
		}
		table.Append(item)
	}
	return table, nil
}

// parseRow rebuilds an item record from one sheet row.
func parseRow(row []string, positions map[types.Column]int) (types.ItemRecord, error) {
	// Helper function to safely get a cell value.
	getCell := func(col types.Column) (string, bool) {
		idx, ok := positions[col]
		if !ok {
			return "", false
		}
		if idx < len(row) {
			return strings.TrimSpace(row[idx]), true
		}
		return "", true
	}

	var item types.ItemRecord
	item.SourceFile, _ = getCell(types.ColumnSourceFile)
	item.PartNumber, _ = getCell(types.ColumnPartNumber)

	// A blank description cell is an unset description.
	if desc, _ := getCell(types.ColumnDescription); desc != "" {
		item.Description = types.StringPtr(desc)
	}

	for _, col := range []types.Column{types.ColumnQuantity, types.ColumnPrice} {
		raw, _ := getCell(col)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return item, fmt.Errorf("%s: %w", col.Header(), err)
		}
		if col == types.ColumnQuantity {
			item.Quantity = &v
		} else {
			item.Price = &v
		}
	}

	return item, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
