package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerRowIndex is the zero-based row holding column headers in agency
// production sheets. The rows above it are letterhead and report titles.
const headerRowIndex = 4

// ReadPolicyRows decodes the first sheet of an xlsx workbook into loosely
// keyed records, one per data row below the header row. Cells are read raw
// so date serials and identity numbers keep their original values.
func ReadPolicyRows(r io.Reader) ([]map[string]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= headerRowIndex {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	headers := make([]string, len(rows[headerRowIndex]))
	for i, header := range rows[headerRowIndex] {
		headers[i] = strings.TrimSpace(header)
	}

	var records []map[string]any
	for _, row := range rows[headerRowIndex+1:] {
		record := make(map[string]any)
		for i, cell := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			if value := strings.TrimSpace(cell); value != "" {
				record[headers[i]] = value
			}
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records, nil
}
