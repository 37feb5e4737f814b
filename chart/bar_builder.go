package chart

import "github.com/radoslav1992/data-visualization-app/dataset"

// ============================================================================
// BAR BUILDER — One bar per row, labeled with its y value
// ============================================================================

// buildBar produces a bar chart of y over x.
// Succeeds for any pair of existing columns; every bar carries its
// y value as a text label.
func buildBar(ds *dataset.Dataset, req Request) Result {
	x, y, fail := resolveAxes(ds, req)
	if fail != nil {
		return *fail
	}

	categories, values := seriesOf(x, y)
	return built(&Config{
		Kind:       Bar,
		XLabel:     x.Name,
		YLabel:     y.Name,
		Categories: categories,
		Values:     values,
		ShowValues: true,
	})
}
