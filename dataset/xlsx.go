package dataset

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ============================================================================
// XLSX LOADER — First sheet, header row, same shape as FromCSV
// ============================================================================

// FromXLSX parses an Excel workbook into a Dataset.
// Only the first sheet is read; the first row names the columns.
func FromXLSX(name string, data []byte) (*Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("dataset: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoColumns
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	headers := rows[0]
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}
	if len(rows) == 1 {
		return nil, ErrNoRows
	}

	raw := make([][]string, len(headers))
	for _, row := range rows[1:] {
		for i := range headers {
			if i < len(row) {
				raw[i] = append(raw[i], row[i])
			} else {
				raw[i] = append(raw[i], "")
			}
		}
	}

	cols := make([]*Column, len(headers))
	for i, h := range headers {
		cols[i] = finishColumn(strings.TrimSpace(h), raw[i])
	}

	return newDataset(name, cols), nil
}
