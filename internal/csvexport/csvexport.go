// =============================================================================
// Quote Scraper - CSV Export Module
// =============================================================================
//
// This module writes the result table as UTF-8, comma-delimited text with a
// header row, and reads such a file back into a table.
//
// FORMAT:
//   source_file,part_number,description,quantity,price
//   q1.pdf,F7300K-ZNC,ANCHOR BOLT KIT ZINC,12,546
//
//   Columns that no record carries are left out. Unset values are empty
//   cells. Numbers use their shortest decimal form.
//
// =============================================================================

package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/ginjaninja78/quote-scraper/internal/types"
)

// =============================================================================
// ROW STRUCTURE
// =============================================================================

// row is one CSV data row as unmarshaled by gocsv when reading.
type row struct {
	SourceFile  string `csv:"source_file"`
	PartNumber  string `csv:"part_number"`
	Description string `csv:"description"`
	Quantity    string `csv:"quantity"`
	Price       string `csv:"price"`
}

// =============================================================================
// WRITER
// =============================================================================

// Write creates (or overwrites) the CSV file at path.
func Write(path string, table *types.ResultTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Encode(file, table); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Encode writes the header row and every record to w. The column set
// depends on the table, so rows are written cell by cell rather than
// marshaled from the fixed row struct.
func Encode(w io.Writer, table *types.ResultTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Headers()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range table.Rows() {
		if err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// =============================================================================
// READER
// =============================================================================

// Read loads a previously exported CSV file.
func Read(path string) (*types.ResultTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Decode(data)
}

// Decode parses exported CSV bytes. Columns missing from the header leave
// the matching field unset on every record.
func Decode(data []byte) (*types.ResultTable, error) {
	headers, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	present := make(map[types.Column]bool)
	for _, h := range headers {
		if col, ok := types.ColumnByHeader(strings.TrimSpace(h)); ok {
			present[col] = true
		}
	}
	if !present[types.ColumnPartNumber] {
		return nil, fmt.Errorf("CSV file has no %s column", types.ColumnPartNumber.Header())
	}

	var rows []*row
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	table := &types.ResultTable{Items: make([]types.ItemRecord, 0, len(rows))}
	for i, r := range rows {
		item, err := r.record(present)
		if err != nil {
			// Row 1 is the header.
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		table.Append(item)
	}
	return table, nil
}

// record converts a CSV row back into an item record.
func (r *row) record(present map[types.Column]bool) (types.ItemRecord, error) {
	item := types.ItemRecord{
		SourceFile: r.SourceFile,
		PartNumber: r.PartNumber,
	}

	// An empty description cell is an unset description.
	if present[types.ColumnDescription] && r.Description != "" {
		item.Description = types.StringPtr(r.Description)
	}

	var err error
	if item.Quantity, err = parseOptional(r.Quantity); err != nil {
		return item, fmt.Errorf("quantity: %w", err)
	}
	if item.Price, err = parseOptional(r.Price); err != nil {
		return item, fmt.Errorf("price: %w", err)
	}
	return item, nil
}

func parseOptional(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
