package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a workbook shaped like a production export: four
// letterhead rows, headers on row five, data below.
func buildWorkbook(t *testing.T, headers []string, rows [][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "A1", "ACENTE POLİÇE RAPORU"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Dönem: 2024"))

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 5)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, header))
	}
	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, 6+rowIdx)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadPolicyRows(t *testing.T) {
	workbook := buildWorkbook(t,
		[]string{"Müşteri Adı", "Poliçe No", "Prim"},
		[][]string{
			{"Mehmet Yılmaz", "TR-001", "4.500,00"},
			{"Ayşe Çelik", "TR-002", "1.250,00"},
		})

	records, err := ReadPolicyRows(workbook)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Mehmet Yılmaz", records[0]["Müşteri Adı"])
	assert.Equal(t, "TR-001", records[0]["Poliçe No"])
	assert.Equal(t, "1.250,00", records[1]["Prim"])
}

func TestReadPolicyRows_SkipsEmptyRows(t *testing.T) {
	workbook := buildWorkbook(t,
		[]string{"Müşteri Adı", "Poliçe No"},
		[][]string{
			{"Mehmet Yılmaz", "TR-001"},
			{"", ""},
			{"Ayşe Çelik", "TR-002"},
		})

	records, err := ReadPolicyRows(workbook)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadPolicyRows_MissingHeaderRow(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "sadece başlık"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ReadPolicyRows(bytes.NewReader(buf.Bytes()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReadPolicyRows_NotAWorkbook(t *testing.T) {
	_, err := ReadPolicyRows(bytes.NewReader([]byte("definitely not xlsx")))
	require.Error(t, err)
}
