package chart

import "testing"

// ============================================================================
// PIE BUILDER TESTS
// ============================================================================

func TestPieDonutExample(t *testing.T) {
	// D = {A:["x","y","z"], B:[1,2,3]}, hole 0.1 → three slices sized 1:2:3.
	ds := mustDataset(t, "A,B\nx,1\ny,2\nz,3\n")

	res := Build(ds, Request{Kind: Pie, X: "A", Y: "B", HoleSize: 0.1})
	if !res.OK() {
		t.Fatalf("pie build failed: %+v", res.Diagnostic)
	}

	c := res.Chart
	if len(c.Categories) != 3 {
		t.Fatalf("slices = %d, want 3", len(c.Categories))
	}
	wantNames := []string{"x", "y", "z"}
	wantValues := []float64{1, 2, 3}
	for i := range wantNames {
		if c.Categories[i] != wantNames[i] || c.Values[i] != wantValues[i] {
			t.Errorf("slice %d = %q:%v, want %q:%v", i, c.Categories[i], c.Values[i], wantNames[i], wantValues[i])
		}
	}
	if c.HoleSize != 0.1 {
		t.Errorf("HoleSize = %v, want 0.1", c.HoleSize)
	}
}

func TestPieRejectsMissingValues(t *testing.T) {
	// The check covers the entire column, not just charted rows.
	cases := []struct {
		name string
		csv  string
	}{
		{"missing in name column", "A,B\nx,1\n,2\nz,3\n"},
		{"missing in value column", "A,B\nx,1\ny,\nz,3\n"},
		{"NULL token", "A,B\nx,1\ny,NULL\nz,3\n"},
		{"N/A token", "A,B\nx,N/A\ny,2\nz,3\n"},
	}
	for _, c := range cases {
		ds := mustDataset(t, c.csv)
		res := Build(ds, Request{Kind: Pie, X: "A", Y: "B"})
		if res.OK() {
			t.Errorf("%s: build should fail", c.name)
			continue
		}
		if res.Diagnostic.Code != CodeMissingValues {
			t.Errorf("%s: code = %q, want %q", c.name, res.Diagnostic.Code, CodeMissingValues)
		}
		if res.Diagnostic.Message == "" {
			t.Errorf("%s: a diagnostic must carry a user-visible reason", c.name)
		}
	}
}

func TestPieRequiresBothColumns(t *testing.T) {
	ds := mustDataset(t, "A,B\nx,1\ny,2\n")

	for _, req := range []Request{
		{Kind: Pie, Y: "B"},
		{Kind: Pie, X: "A"},
		{Kind: Pie},
	} {
		res := Build(ds, req)
		if res.OK() {
			t.Errorf("pie with x=%q y=%q should fail", req.X, req.Y)
			continue
		}
		if res.Diagnostic.Code != CodeMissingAxis {
			t.Errorf("code = %q, want %q", res.Diagnostic.Code, CodeMissingAxis)
		}
	}
}

func TestPieHoleClamping(t *testing.T) {
	ds := mustDataset(t, "A,B\nx,1\ny,2\n")

	cases := []struct {
		in, want float64
	}{
		{0.0, 0.0}, // standard pie
		{0.5, 0.5}, // upper boundary
		{0.9, 0.5},
		{-0.2, 0.0},
	}
	for _, c := range cases {
		res := Build(ds, Request{Kind: Pie, X: "A", Y: "B", HoleSize: c.in})
		if !res.OK() {
			t.Fatalf("pie build failed for hole %v: %+v", c.in, res.Diagnostic)
		}
		if got := res.Chart.HoleSize; got != c.want {
			t.Errorf("hole %v → %v, want %v", c.in, got, c.want)
		}
	}
}
