package chart

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/radoslav1992/data-visualization-app/dataset"
)

// ============================================================================
// CORRELATION — Pairwise Pearson over numeric columns
// ============================================================================

// correlationMatrix computes the pairwise Pearson correlation of the
// given columns. Rows where either value is missing are dropped for
// that pair (pairwise-complete observations). The result is symmetric
// with an exact 1.0 diagonal; pairs with no variance or fewer than two
// complete rows come back as NaN, matching what a dataframe corr()
// would report.
func correlationMatrix(cols []*dataset.Column) [][]float64 {
	n := len(cols)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pearson(cols[i], cols[j])
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}

// pearson computes the correlation of two columns over their complete rows.
func pearson(a, b *dataset.Column) float64 {
	x, y := a.Floats(b)
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
