package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_WritesHeaderAndRows(t *testing.T) {
	body, err := XLSX(Sheet{
		Name:    "Waste",
		Headers: []string{"date", "product_type", "waste_dollar"},
		Rows: [][]any{
			{"2025-03-01", "donut", 4.5},
			{"2025-03-02", "munchkin", 12.0},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Waste"}, f.GetSheetList())

	rows, err := f.GetRows("Waste")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "product_type", "waste_dollar"}, rows[0])
	assert.Equal(t, []string{"2025-03-02", "munchkin", "12"}, rows[2])
}

func TestXLSX_EmptyTableKeepsHeader(t *testing.T) {
	body, err := XLSX(Sheet{Name: "Labor", Headers: []string{"date", "actual_hours"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Labor")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"date", "actual_hours"}}, rows)
}
