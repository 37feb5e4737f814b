package dataset

import "math"

// ============================================================================
// DATASET — Ordered named columns with inferred types
// ============================================================================
// A Dataset is loaded once per upload and is immutable afterwards.
// Chart builders read through it; nothing ever writes back.
// ============================================================================

// ColumnType classifies a column after inference.
type ColumnType int

const (
	// Text is the default: values are opaque strings.
	Text ColumnType = iota
	// Numeric means enough of the column parses as float64 (see infer.go).
	Numeric
	// Empty means every value in the column is missing.
	Empty
)

// String returns the lowercase type name used in JSON and the UI.
func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Empty:
		return "empty"
	default:
		return "text"
	}
}

// Column is a single named column.
// Values holds the raw cell text in row order, with missing cells
// normalized to "". floats holds the parsed value per row, NaN where
// the cell is missing or doesn't parse.
type Column struct {
	Name    string
	Type    ColumnType
	Values  []string
	Missing int

	floats []float64
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.Values) }

// HasMissing reports whether any cell in the column is missing.
// The check covers the entire column, not a charted subset.
func (c *Column) HasMissing() bool { return c.Missing > 0 }

// Float returns the parsed numeric value at row i.
// ok is false when the cell is missing or not parseable as a number.
func (c *Column) Float(i int) (float64, bool) {
	if i < 0 || i >= len(c.floats) {
		return 0, false
	}
	v := c.floats[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Floats returns the parsed values for rows where both this column and
// other hold a number. Used for pairwise-complete correlation.
func (c *Column) Floats(other *Column) (x, y []float64) {
	n := len(c.floats)
	if len(other.floats) < n {
		n = len(other.floats)
	}
	for i := 0; i < n; i++ {
		a, b := c.floats[i], other.floats[i]
		if math.IsNaN(a) || math.IsNaN(b) {
			continue
		}
		x = append(x, a)
		y = append(y, b)
	}
	return x, y
}

// Dataset is an ordered collection of named columns of equal length.
type Dataset struct {
	Name string

	cols   []*Column
	byName map[string]*Column
	rows   int
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.rows }

// ColumnNames returns all column names in file order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns all columns in file order.
func (d *Dataset) Columns() []*Column { return d.cols }

// Column looks a column up by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.byName[name]
	return c, ok
}

// NumericColumns returns the columns classified as Numeric, in file order.
func (d *Dataset) NumericColumns() []*Column {
	var out []*Column
	for _, c := range d.cols {
		if c.Type == Numeric {
			out = append(out, c)
		}
	}
	return out
}

// newDataset assembles a Dataset from finished columns.
func newDataset(name string, cols []*Column) *Dataset {
	d := &Dataset{
		Name:   name,
		cols:   cols,
		byName: make(map[string]*Column, len(cols)),
	}
	for _, c := range cols {
		d.byName[c.Name] = c
		if c.Len() > d.rows {
			d.rows = c.Len()
		}
	}
	return d
}
