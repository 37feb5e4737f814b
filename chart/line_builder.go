package chart

import (
	"math"

	"github.com/radoslav1992/data-visualization-app/dataset"
)

// ============================================================================
// LINE BUILDER — Connected sequence in row order, linear shape
// ============================================================================

// buildLine produces a line chart of y over x.
// Points keep the dataset's row order — no sorting by x value — and the
// line width is clamped to [1,10] (0 means "use the default").
// Succeeds for any pair of existing columns; rows whose y cell is
// missing or non-numeric become gaps in the line.
func buildLine(ds *dataset.Dataset, req Request) Result {
	x, y, fail := resolveAxes(ds, req)
	if fail != nil {
		return *fail
	}

	width := req.LineWidth
	if width == 0 {
		width = DefaultLineWidth
	}

	categories, values := seriesOf(x, y)
	return built(&Config{
		Kind:       Line,
		XLabel:     x.Name,
		YLabel:     y.Name,
		Categories: categories,
		Values:     values,
		LineWidth:  clampInt(width, 1, 10),
	})
}

// seriesOf pairs x labels with parsed y values, row by row.
// Unparseable y cells come back as NaN so the renderer can leave a gap.
func seriesOf(x, y *dataset.Column) ([]string, []float64) {
	n := x.Len()
	if y.Len() > n {
		n = y.Len()
	}

	categories := make([]string, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < x.Len() {
			categories[i] = x.Values[i]
		}
		if v, ok := y.Float(i); ok {
			values[i] = v
		} else {
			values[i] = math.NaN()
		}
	}
	return categories, values
}
