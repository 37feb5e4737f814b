package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// CSV LOADER — Standard comma-separated format with a header row
// ============================================================================

// FromCSV parses CSV bytes into a Dataset.
// The first row names the columns; every following row is data.
// Malformed rows are skipped; short rows are padded with missing cells.
func FromCSV(name string, data []byte) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read CSV header: %w", err)
	}
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}

	raw := make([][]string, len(headers))
	rows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		for i := range headers {
			if i < len(row) {
				raw[i] = append(raw[i], row[i])
			} else {
				raw[i] = append(raw[i], "")
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrNoRows
	}

	cols := make([]*Column, len(headers))
	for i, h := range headers {
		cols[i] = finishColumn(strings.TrimSpace(h), raw[i])
	}

	return newDataset(name, cols), nil
}
