package chart

import "github.com/radoslav1992/data-visualization-app/dataset"

// ============================================================================
// PIE BUILDER — Slices named by x, sized by y, optional donut hole
// ============================================================================

// buildPie produces a pie chart with slice names from x and sizes from y.
// It refuses columns containing missing values — anywhere in the column,
// not just in charted rows — because a silently dropped slice is worse
// than no chart. The hole size is clamped to [0.0, 0.5]; 0.0 is a plain
// pie, anything above carves a donut.
func buildPie(ds *dataset.Dataset, req Request) Result {
	if req.X == "" || req.Y == "" {
		return failf(CodeMissingAxis, "Please select appropriate columns for the pie chart.")
	}

	x, y, fail := resolveAxes(ds, req)
	if fail != nil {
		return *fail
	}

	if x.HasMissing() || y.HasMissing() {
		return failf(CodeMissingValues, "The selected columns for the pie chart contain missing values.")
	}

	categories := make([]string, 0, ds.Rows())
	values := make([]float64, 0, ds.Rows())
	for i := 0; i < ds.Rows(); i++ {
		v, _ := y.Float(i)
		categories = append(categories, x.Values[i])
		values = append(values, v)
	}

	return built(&Config{
		Kind:       Pie,
		Categories: categories,
		Values:     values,
		HoleSize:   clampFloat(req.HoleSize, 0.0, 0.5),
	})
}
