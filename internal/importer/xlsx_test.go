package importer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/suppa/taox-brain/internal/importer"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Date", "Hero", "Result", "Note"},
		{"2025-01-10", "Nakroth", "Win", "early snowball"},
		{"2025-01-11", "Aya", "Loss", ""},
	})

	rows, err := importer.ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Nakroth", rows[0].Hero)
	assert.Equal(t, "Win", rows[0].Result)
	assert.Equal(t, "2025-01-11", rows[1].Date)
	assert.Equal(t, "", rows[1].Note)
}

func TestParseWorkbookExtraColumnsIgnored(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Patch", "Date", "Hero", "Result", "Note"},
		{"1.2", "2025-01-10", "Zip", "victory", "clutch"},
	})

	rows, err := importer.ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zip", rows[0].Hero)
}

func TestParseWorkbookMissingColumns(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Date", "Hero"},
		{"2025-01-10", "Nakroth"},
	})

	_, err := importer.ParseWorkbook(buf)
	var missingErr *importer.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t, []string{"Result", "Note"}, missingErr.Missing)
}

func TestParseWorkbookSkipsEmptyRows(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Date", "Hero", "Result", "Note"},
		{"", "", "", ""},
		{"2025-01-10", "Krixi", "w", ""},
	})

	rows, err := importer.ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Krixi", rows[0].Hero)
}

func TestParseWorkbookNotAWorkbook(t *testing.T) {
	_, err := importer.ParseWorkbook(bytes.NewBufferString("not an xlsx file"))
	assert.Error(t, err)
}
