package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTable_Columns(t *testing.T) {
	t.Run("empty table has no columns", func(t *testing.T) {
		var table ResultTable
		assert.True(t, table.Empty())
		assert.Empty(t, table.Columns())
	})

	t.Run("omits columns absent from every record", func(t *testing.T) {
		table := ResultTable{}
		table.Append(
			ItemRecord{SourceFile: "a.pdf", PartNumber: "F7300K-ZNC"},
			ItemRecord{SourceFile: "a.pdf", PartNumber: "F518525ASM-C", Price: FloatPtr(12.5)},
		)

		assert.Equal(t, []Column{ColumnSourceFile, ColumnPartNumber, ColumnPrice}, table.Columns())
		assert.Equal(t, []string{"source_file", "part_number", "price"}, table.Headers())
		assert.Equal(t, [][]string{
			{"a.pdf", "F7300K-ZNC", ""},
			{"a.pdf", "F518525ASM-C", "12.5"},
		}, table.Rows())
	})

	t.Run("empty description still counts as present", func(t *testing.T) {
		table := ResultTable{Items: []ItemRecord{
			{SourceFile: "a.pdf", PartNumber: "AB-1", Description: StringPtr("")},
		}}
		assert.Contains(t, table.Columns(), ColumnDescription)
	})

	t.Run("keeps fixed order", func(t *testing.T) {
		table := ResultTable{Items: []ItemRecord{
			{PartNumber: "AB-1", Price: FloatPtr(1), Quantity: FloatPtr(2), Description: StringPtr("x"), SourceFile: "q.pdf"},
		}}
		assert.Equal(t, AllColumns, table.Columns())
	})
}

func TestItemRecord_Cell(t *testing.T) {
	item := ItemRecord{SourceFile: "q.pdf", PartNumber: "AB-1", Quantity: FloatPtr(12)}

	assert.Equal(t, "q.pdf", item.Cell(ColumnSourceFile))
	assert.Equal(t, 12.0, item.Cell(ColumnQuantity))
	assert.Nil(t, item.Cell(ColumnPrice))
	assert.Nil(t, item.Cell(ColumnDescription))
	assert.Equal(t, "12", item.Text(ColumnQuantity))
}

func TestColumnByHeader(t *testing.T) {
	for _, c := range AllColumns {
		got, ok := ColumnByHeader(c.Header())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := ColumnByHeader("unit_price")
	assert.False(t, ok)
}
