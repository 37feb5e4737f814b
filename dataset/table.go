package dataset

// ============================================================================
// TABLE — Render-ready preview of the first rows
// ============================================================================

// Table is a render-ready slice of the dataset for the preview toggle.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"` // total rows in the dataset
}

// Preview returns a Table holding the first limit rows.
// Missing cells come back as "" just as they are stored.
func (d *Dataset) Preview(limit int) Table {
	if limit <= 0 || limit > d.rows {
		limit = d.rows
	}

	t := Table{
		Columns: d.ColumnNames(),
		Rows:    make([][]string, limit),
		Total:   d.rows,
	}
	for i := 0; i < limit; i++ {
		row := make([]string, len(d.cols))
		for j, c := range d.cols {
			if i < len(c.Values) {
				row[j] = c.Values[i]
			}
		}
		t.Rows[i] = row
	}
	return t
}
