package chart

import "github.com/radoslav1992/data-visualization-app/dataset"

// ============================================================================
// DISPATCHER — Kind → builder
// ============================================================================

// Build dispatches a request to the builder for its kind and applies
// the requested title and palette to the outcome. The switch is
// exhaustive over the Kind enum; ParseKind rejects anything else at
// the boundary, so the final return is never reached with a Kind
// produced by this package.
func Build(ds *dataset.Dataset, req Request) Result {
	var res Result
	switch req.Kind {
	case Line:
		res = buildLine(ds, req)
	case Bar:
		res = buildBar(ds, req)
	case Pie:
		res = buildPie(ds, req)
	case Heatmap:
		res = buildHeatmap(ds, req)
	default:
		return failf(CodeUnsupportedKind, "Unsupported chart kind.")
	}

	if res.OK() {
		ApplyStyle(res.Chart, req.Title, req.Palette)
	}
	return res
}
