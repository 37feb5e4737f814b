// Package render turns built chart configs into interactive ECharts pages.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/radoslav1992/data-visualization-app/chart"
)

// ============================================================================
// ECHARTS RENDERER — chart.Config → self-contained interactive HTML
// ============================================================================
// The renderer is a thin adapter: all decisions (values, labels, clamped
// parameters, palette colors) were made by the builders; this layer only
// translates them into go-echarts options.
// ============================================================================

const (
	chartWidth  = "960px"
	chartHeight = "560px"
)

// Chart renders a built config as a complete HTML page.
func Chart(w io.Writer, c *chart.Config) error {
	if c == nil {
		return fmt.Errorf("render: nil chart config")
	}

	switch c.Kind {
	case chart.Line:
		return renderLine(w, c)
	case chart.Bar:
		return renderBar(w, c)
	case chart.Pie:
		return renderPie(w, c)
	case chart.Heatmap:
		return renderHeatmap(w, c)
	}
	return fmt.Errorf("render: unsupported chart kind %v", c.Kind)
}

func renderLine(w io.Writer, c *chart.Config) error {
	line := charts.NewLine()
	line.SetGlobalOptions(baseOptions(c)...)

	data := make([]opts.LineData, len(c.Values))
	for i, v := range c.Values {
		data[i] = opts.LineData{Value: cell(v)}
	}

	line.SetXAxis(c.Categories).
		AddSeries(c.YLabel, data,
			charts.WithLineStyleOpts(opts.LineStyle{Width: float32(c.LineWidth)}),
		)
	return line.Render(w)
}

func renderBar(w io.Writer, c *chart.Config) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(c)...)

	data := make([]opts.BarData, len(c.Values))
	for i, v := range c.Values {
		data[i] = opts.BarData{Value: cell(v)}
	}

	bar.SetXAxis(c.Categories).
		AddSeries(c.YLabel, data,
			charts.WithLabelOpts(opts.Label{Show: true, Position: "top"}),
		)
	return bar.Render(w)
}

func renderPie(w io.Writer, c *chart.Config) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(baseOptions(c)...)

	data := make([]opts.PieData, len(c.Values))
	for i := range c.Values {
		data[i] = opts.PieData{Name: c.Categories[i], Value: c.Values[i]}
	}

	pie.AddSeries(c.Title, data,
		charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius(c.HoleSize)}),
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {c}"}),
	)
	return pie.Render(w)
}

func renderHeatmap(w io.Writer, c *chart.Config) error {
	hm := charts.NewHeatMap()

	options := baseOptions(c)
	options = append(options,
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: c.Categories}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: c.Categories}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: c.Colors},
		}),
	)
	hm.SetGlobalOptions(options...)

	var data []opts.HeatMapData
	for i, row := range c.Matrix {
		for j, v := range row {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, cell(round2(v))}})
		}
	}

	hm.AddSeries("correlation", data,
		charts.WithLabelOpts(opts.Label{Show: true}),
	)
	return hm.Render(w)
}

// baseOptions are the global options shared by every chart kind.
func baseOptions(c *chart.Config) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithColorsOpts(opts.Colors(c.Colors)),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// pieRadius maps a hole fraction to ECharts inner/outer radii.
// The outer radius stays fixed; the hole carves the given fraction of it.
func pieRadius(hole float64) []string {
	const outer = 75 // percent of the canvas
	inner := int(math.Round(hole * outer))
	return []string{fmt.Sprintf("%d%%", inner), fmt.Sprintf("%d%%", outer)}
}

// cell converts a value to an ECharts cell, mapping NaN to the "-"
// placeholder so gaps render as gaps instead of breaking the JSON.
func cell(v float64) interface{} {
	if math.IsNaN(v) {
		return "-"
	}
	return v
}

func round2(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
