package chart

import (
	"math"
	"testing"

	"github.com/radoslav1992/data-visualization-app/dataset"
)

// ============================================================================
// BUILDER TESTS — line, bar, dispatch
// ============================================================================

func mustDataset(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromCSV("test.csv", []byte(csv))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	return ds
}

var trendCSV = `Day,Visits,Label
Mon,120,a
Tue,95,b
Wed,143,c
Thu,,d
Fri,180,e
`

func TestLineBuild(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	res := Build(ds, Request{Kind: Line, X: "Day", Y: "Visits", LineWidth: 3})
	if !res.OK() {
		t.Fatalf("line build failed: %+v", res.Diagnostic)
	}

	c := res.Chart
	if c.LineWidth != 3 {
		t.Errorf("LineWidth = %d, want 3", c.LineWidth)
	}
	// Row order, not x-sorted.
	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	for i, label := range want {
		if c.Categories[i] != label {
			t.Errorf("category %d = %q, want %q (row order must be preserved)", i, c.Categories[i], label)
		}
	}
	// The empty Thursday cell becomes a gap, not a zero.
	if !math.IsNaN(c.Values[3]) {
		t.Errorf("Values[3] = %v, want NaN for the missing cell", c.Values[3])
	}
}

func TestLineWidthClamping(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	cases := []struct {
		in, want int
	}{
		{0, DefaultLineWidth}, // unset → default
		{1, 1},                // lower boundary accepted
		{10, 10},              // upper boundary accepted
		{-5, 1},
		{25, 10},
	}
	for _, c := range cases {
		res := Build(ds, Request{Kind: Line, X: "Day", Y: "Visits", LineWidth: c.in})
		if !res.OK() {
			t.Fatalf("line build failed for width %d: %+v", c.in, res.Diagnostic)
		}
		if got := res.Chart.LineWidth; got != c.want {
			t.Errorf("width %d → %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLineSucceedsForTextY(t *testing.T) {
	// Any pair of existing columns builds; unparseable y cells are gaps.
	ds := mustDataset(t, trendCSV)
	res := Build(ds, Request{Kind: Line, X: "Day", Y: "Label"})
	if !res.OK() {
		t.Fatalf("line build over text column failed: %+v", res.Diagnostic)
	}
}

func TestBarBuild(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	res := Build(ds, Request{Kind: Bar, X: "Day", Y: "Visits"})
	if !res.OK() {
		t.Fatalf("bar build failed: %+v", res.Diagnostic)
	}
	if !res.Chart.ShowValues {
		t.Error("bars must be labeled with their y values")
	}
	if res.Chart.XLabel != "Day" || res.Chart.YLabel != "Visits" {
		t.Errorf("axis labels = %q/%q, want Day/Visits", res.Chart.XLabel, res.Chart.YLabel)
	}
}

func TestMissingAxisSelection(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	for _, kind := range []Kind{Line, Bar} {
		res := Build(ds, Request{Kind: kind, X: "Day"})
		if res.OK() {
			t.Errorf("%s with no y should fail", kind)
			continue
		}
		if res.Diagnostic.Code != CodeMissingAxis {
			t.Errorf("%s: code = %q, want %q", kind, res.Diagnostic.Code, CodeMissingAxis)
		}
	}
}

func TestUnknownColumn(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	res := Build(ds, Request{Kind: Bar, X: "Day", Y: "Nope"})
	if res.OK() {
		t.Fatal("unknown column should fail")
	}
	if res.Diagnostic.Code != CodeUnknownColumn {
		t.Errorf("code = %q, want %q", res.Diagnostic.Code, CodeUnknownColumn)
	}
}

func TestBuildAppliesStyle(t *testing.T) {
	ds := mustDataset(t, trendCSV)

	res := Build(ds, Request{Kind: Bar, X: "Day", Y: "Visits", Title: "Traffic", Palette: "Viridis"})
	if !res.OK() {
		t.Fatalf("build failed: %+v", res.Diagnostic)
	}
	if res.Chart.Title != "Traffic" {
		t.Errorf("Title = %q, want Traffic", res.Chart.Title)
	}
	if res.Chart.Colors[0] != ResolvePalette("Viridis")[0] {
		t.Error("palette colors not applied")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"line":       Line,
		"Line Chart": Line,
		"BAR":        Bar,
		"Pie Chart":  Pie,
		"heatmap":    Heatmap,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseKind("sunburst"); err == nil {
		t.Error("ParseKind should reject unknown kinds at the boundary")
	}
}
