package chart

import "github.com/radoslav1992/data-visualization-app/dataset"

// ============================================================================
// AXIS RESOLUTION — Shared by the x/y chart builders
// ============================================================================

// resolveAxes looks the selected x and y columns up in the dataset.
// The second return is a failed Result when either selection is unset
// or names a column that doesn't exist. No type checking happens here;
// each builder applies its own rules.
func resolveAxes(ds *dataset.Dataset, req Request) (x, y *dataset.Column, fail *Result) {
	if req.X == "" || req.Y == "" {
		r := failf(CodeMissingAxis, "Please select both an x and a y column for the %s.", req.Kind)
		return nil, nil, &r
	}

	x, ok := ds.Column(req.X)
	if !ok {
		r := failf(CodeUnknownColumn, "Column %q does not exist in the dataset.", req.X)
		return nil, nil, &r
	}
	y, ok = ds.Column(req.Y)
	if !ok {
		r := failf(CodeUnknownColumn, "Column %q does not exist in the dataset.", req.Y)
		return nil, nil, &r
	}
	return x, y, nil
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat bounds v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
