package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/launch-dashboard/internal/model"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				row.AddCell().SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "launches.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

var xlsxHeader = []string{"Launch Site", "class", "Payload Mass (kg)", "Booster Version Category"}

func TestLoad_XLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			xlsxHeader,
			{"CCAFS LC-40", "0", "525", "v1.0"},
			{"KSC LC-39A", "1", "5600", "FT"},
		},
	})

	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, ds.Sites())
	assert.InDelta(t, 525.0, ds.MinPayload(), 0.0001)
	assert.InDelta(t, 5600.0, ds.MaxPayload(), 0.0001)
	assert.Equal(t, model.OutcomeSuccess, ds.Records()[1].Class)
}

func TestLoad_XLSXNamedSheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"launches": {
			xlsxHeader,
			{"VAFB SLC-4E", "1", "9600", "B4"},
		},
	})

	ds, err := Load(context.Background(), path, Options{Sheet: "launches"})
	require.NoError(t, err)
	assert.Equal(t, []string{"VAFB SLC-4E"}, ds.Sites())
}

func TestLoad_XLSXSheetNotFound(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {xlsxHeader},
	})

	_, err := Load(context.Background(), path, Options{Sheet: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sheet "missing" not found`)
}

func TestLoad_XLSXMissingColumn(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Launch Site", "class"},
			{"A", "1"},
		},
	})

	_, err := Load(context.Background(), path, Options{Format: FormatXLSX})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoad_XLSXNotAWorkbook(t *testing.T) {
	path := writeFile(t, "broken.xlsx", "not a zip archive")
	_, err := Load(context.Background(), path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xlsx: open file")
}
