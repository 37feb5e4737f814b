package chart

import (
	"fmt"
	"strings"
)

// ============================================================================
// CHART TYPES — Kinds, requests, and the build result
// ============================================================================
// A Request is constructed fresh from user input for every render and
// passed by value; no selection state is shared between renders.
// A Result carries either a finished Config or a Diagnostic — never both,
// never neither.
// ============================================================================

// Kind is the closed set of supported chart kinds.
type Kind int

const (
	Line Kind = iota
	Bar
	Pie
	Heatmap
)

// String returns the display name shown in the UI.
func (k Kind) String() string {
	switch k {
	case Line:
		return "Line Chart"
	case Bar:
		return "Bar Chart"
	case Pie:
		return "Pie Chart"
	case Heatmap:
		return "Heatmap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every chart kind in UI order.
func Kinds() []Kind { return []Kind{Line, Bar, Pie, Heatmap} }

// ParseKind maps a kind token ("line", "Bar Chart", ...) to its Kind.
// Unknown tokens are rejected here, at the boundary, so builders never
// see a kind outside the enum.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "line chart":
		return Line, nil
	case "bar", "bar chart":
		return Bar, nil
	case "pie", "pie chart":
		return Pie, nil
	case "heatmap":
		return Heatmap, nil
	}
	return 0, fmt.Errorf("unknown chart kind %q", s)
}

// NeedsAxes reports whether the kind requires x/y column selections.
// Heatmap picks its columns itself (all numeric ones).
func (k Kind) NeedsAxes() bool { return k != Heatmap }

// Request is one render's worth of user input.
type Request struct {
	Kind      Kind    `json:"kind"`
	X         string  `json:"x"`         // x-axis / name column ("" = unset)
	Y         string  `json:"y"`         // y-axis / value column ("" = unset)
	LineWidth int     `json:"lineWidth"` // line charts, clamped to [1,10]
	HoleSize  float64 `json:"holeSize"`  // pie charts, clamped to [0.0,0.5]
	Title     string  `json:"title"`
	Palette   string  `json:"palette"`
}

// Default request parameters.
const (
	DefaultLineWidth = 2
	DefaultHoleSize  = 0.1
)

// Config is a fully built, render-ready chart description.
// It is either complete or it doesn't exist; builders never hand out
// a partial one.
type Config struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Colors []string `json:"colors"`

	XLabel string `json:"xLabel,omitempty"`
	YLabel string `json:"yLabel,omitempty"`

	// Line/Bar/Pie: Categories and Values are parallel, in row order.
	Categories []string  `json:"categories,omitempty"`
	Values     []float64 `json:"values,omitempty"`

	// Heatmap: Matrix[i][j] is the correlation of Categories[i] with
	// Categories[j].
	Matrix [][]float64 `json:"matrix,omitempty"`

	LineWidth  int     `json:"lineWidth,omitempty"`
	HoleSize   float64 `json:"holeSize,omitempty"`
	ShowValues bool    `json:"showValues,omitempty"`
}

// Diagnostic explains why a chart could not be built.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Diagnostic codes.
const (
	CodeMissingAxis      = "missing_axis"
	CodeUnknownColumn    = "unknown_column"
	CodeMissingValues    = "missing_values"
	CodeNoNumericColumns = "no_numeric_columns"
	CodeUnsupportedKind  = "unsupported_kind"
)

// Result is the outcome of a build: exactly one of Chart or Diagnostic
// is set.
type Result struct {
	Chart      *Config     `json:"chart,omitempty"`
	Diagnostic *Diagnostic `json:"diagnostic,omitempty"`
}

// OK reports whether the build produced a chart.
func (r Result) OK() bool { return r.Chart != nil }

func built(c *Config) Result {
	return Result{Chart: c}
}

func failf(code, format string, args ...interface{}) Result {
	return Result{Diagnostic: &Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}}
}
