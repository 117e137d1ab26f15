package csvexport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/quote-scraper/internal/types"
)

func sampleTable() *types.ResultTable {
	return &types.ResultTable{Items: []types.ItemRecord{
		{
			SourceFile:  "quote 1.pdf",
			PartNumber:  "F7300K-ZNC",
			Description: types.StringPtr(`ANCHOR BOLT, 1/2" ZINC`),
			Quantity:    types.FloatPtr(12),
			Price:       types.FloatPtr(45.5),
		},
		{
			SourceFile: "quote 2.pdf",
			PartNumber: "F518525ASM-C",
		},
	}}
}

func TestEncode(t *testing.T) {
	t.Run("writes header and rows", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, Encode(&buf, sampleTable()))

		assert.Equal(t,
			"source_file,part_number,description,quantity,price\n"+
				"quote 1.pdf,F7300K-ZNC,\"ANCHOR BOLT, 1/2\"\" ZINC\",12,45.5\n"+
				"quote 2.pdf,F518525ASM-C,,,\n",
			buf.String())
	})

	t.Run("omits absent columns", func(t *testing.T) {
		table := &types.ResultTable{Items: []types.ItemRecord{
			{SourceFile: "q.pdf", PartNumber: "AB-1", Price: types.FloatPtr(3)},
		}}
		var buf bytes.Buffer

		require.NoError(t, Encode(&buf, table))

		assert.Equal(t, "source_file,part_number,price\nq.pdf,AB-1,3\n", buf.String())
	})
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted_quotes.csv")
	want := sampleTable()

	require.NoError(t, Write(path, want))
	got, err := Read(path)

	require.NoError(t, err)
	require.Equal(t, want.Len(), got.Len())
	for i := range want.Items {
		assert.Equal(t, want.Items[i].SourceFile, got.Items[i].SourceFile)
		assert.Equal(t, want.Items[i].PartNumber, got.Items[i].PartNumber)
		assert.Equal(t, want.Items[i].Quantity, got.Items[i].Quantity)
		assert.Equal(t, want.Items[i].Price, got.Items[i].Price)
		assert.Equal(t, want.Items[i].Description, got.Items[i].Description)
	}
	assert.Nil(t, got.Items[1].Description)
}

func TestDecode(t *testing.T) {
	t.Run("missing optional columns stay unset", func(t *testing.T) {
		table, err := Decode([]byte("source_file,part_number\nq.pdf,AB-1\n"))

		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Nil(t, table.Items[0].Description)
		assert.Nil(t, table.Items[0].Quantity)
		assert.Equal(t, []types.Column{types.ColumnSourceFile, types.ColumnPartNumber}, table.Columns())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Decode(nil)
		require.Error(t, err)
	})

	t.Run("no part number column", func(t *testing.T) {
		_, err := Decode([]byte("source_file,price\nq.pdf,1\n"))
		require.Error(t, err)
	})

	t.Run("bad number reports the row", func(t *testing.T) {
		_, err := Decode([]byte("part_number,quantity\nAB-1,2\nAB-2,two\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestWrite_Unwritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	err := Write(filepath.Join(dir, "out.csv"), sampleTable())

	require.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
