package chart

import "github.com/radoslav1992/data-visualization-app/dataset"

// ============================================================================
// HEATMAP BUILDER — Pearson correlation matrix over numeric columns
// ============================================================================

// buildHeatmap produces a correlation heatmap over every numeric column
// of the dataset. Axis selections are ignored. Fails when the dataset
// has no numeric columns at all.
func buildHeatmap(ds *dataset.Dataset, req Request) Result {
	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return failf(CodeNoNumericColumns, "No numeric columns available for heatmap.")
	}

	names := make([]string, len(numeric))
	for i, c := range numeric {
		names[i] = c.Name
	}

	return built(&Config{
		Kind:       Heatmap,
		Categories: names,
		Matrix:     correlationMatrix(numeric),
		ShowValues: true,
	})
}
