package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/radoslav1992/data-visualization-app/chart"
)

// ============================================================================
// RENDER SMOKE TESTS
// ============================================================================
// The renderer only translates finished configs; these tests check that
// each kind produces a page at all and that the builder's decisions
// survive the translation.
// ============================================================================

func renderToString(t *testing.T, c *chart.Config) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Chart(&buf, c); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestRenderEachKind(t *testing.T) {
	configs := []*chart.Config{
		{Kind: chart.Line, Title: "line demo", Colors: chart.ResolvePalette(""), Categories: []string{"a", "b"}, Values: []float64{1, 2}, LineWidth: 2},
		{Kind: chart.Bar, Title: "bar demo", Colors: chart.ResolvePalette(""), Categories: []string{"a", "b"}, Values: []float64{1, 2}, ShowValues: true},
		{Kind: chart.Pie, Title: "pie demo", Colors: chart.ResolvePalette(""), Categories: []string{"a", "b"}, Values: []float64{1, 2}, HoleSize: 0.1},
		{Kind: chart.Heatmap, Title: "heatmap demo", Colors: chart.ResolvePalette(""), Categories: []string{"x", "y"}, Matrix: [][]float64{{1, 0.5}, {0.5, 1}}, ShowValues: true},
	}
	for _, c := range configs {
		html := renderToString(t, c)
		if !strings.Contains(html, "echarts") {
			t.Errorf("%v: page does not embed an echarts chart", c.Kind)
		}
		if !strings.Contains(html, c.Title) {
			t.Errorf("%v: page does not carry the title %q", c.Kind, c.Title)
		}
	}
}

func TestRenderNilConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := Chart(&buf, nil); err == nil {
		t.Error("nil config must be rejected")
	}
}

func TestPieRadius(t *testing.T) {
	cases := []struct {
		hole  float64
		inner string
	}{
		{0.0, "0%"},
		{0.1, "8%"},  // 10% of the 75% outer radius
		{0.5, "38%"}, // rounded from 37.5
	}
	for _, c := range cases {
		r := pieRadius(c.hole)
		if r[0] != c.inner {
			t.Errorf("hole %v → inner %s, want %s", c.hole, r[0], c.inner)
		}
		if r[1] != "75%" {
			t.Errorf("outer radius = %s, want 75%%", r[1])
		}
	}
}

func TestCellMapsNaN(t *testing.T) {
	if got := cell(3.5); got != 3.5 {
		t.Errorf("cell(3.5) = %v", got)
	}
	nan := cell(math.NaN())
	if nan != "-" {
		t.Errorf("cell(NaN) = %v, want the ECharts placeholder", nan)
	}
}
