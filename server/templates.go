package server

import (
	"html/template"
	"net/http"

	"github.com/radoslav1992/data-visualization-app/chart"
	"github.com/radoslav1992/data-visualization-app/dataset"
)

// ============================================================================
// TEMPLATES — The single page and the diagnostic page
// ============================================================================

// indexData feeds the single-page template.
type indexData struct {
	Loaded   bool
	Name     string
	Rows     int
	Columns  []string
	Kinds    []chart.Kind
	Palettes []string
	Preview  *dataset.Table

	DefaultWidth int
	DefaultHole  float64
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Data Visualization Options</title>
<style>
  body { font-family: sans-serif; margin: 0; display: flex; }
  .sidebar { width: 320px; padding: 1.5rem; background: #f3f4f6; min-height: 100vh; }
  .main { flex: 1; padding: 1.5rem; }
  label { display: block; margin-top: .75rem; font-size: .85rem; color: #374151; }
  input, select { width: 100%; margin-top: .25rem; padding: .3rem; box-sizing: border-box; }
  button { margin-top: 1rem; padding: .5rem 1rem; }
  table { border-collapse: collapse; margin-top: 1rem; }
  th, td { border: 1px solid #d1d5db; padding: .3rem .6rem; font-size: .85rem; }
  .muted { color: #6b7280; font-size: .85rem; }
</style>
</head>
<body>
<div class="sidebar">
  <h2>Data Visualization Options</h2>
  <p class="muted">Configure your visualization options here.</p>

  <form action="/upload" method="post" enctype="multipart/form-data">
    <label>Upload a CSV or XLSX file
      <input type="file" name="file" accept=".csv,.xlsx" required>
    </label>
    <button type="submit">Upload</button>
  </form>

{{if .Loaded}}
  <p class="muted">Loaded <strong>{{.Name}}</strong> — {{.Rows}} rows, {{len .Columns}} columns.</p>
  {{if .Preview}}<p><a href="/">Hide data preview</a></p>{{else}}<p><a href="/?preview=1">Show data preview</a></p>{{end}}

  <form action="/chart" method="post" target="_blank">
    <label>Chart Title
      <input type="text" name="title" value="My Chart">
    </label>
    <label>Choose a color scheme
      <select name="palette">
        {{range .Palettes}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </label>
    <label>Select the chart type
      <select name="kind">
        {{range .Kinds}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </label>
    <label>Select x-axis
      <select name="x">
        {{range .Columns}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </label>
    <label>Select y-axis
      <select name="y">
        {{range .Columns}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </label>
    <label>Line Width (line charts)
      <input type="number" name="lineWidth" min="1" max="10" value="{{.DefaultWidth}}">
    </label>
    <label>Donut Hole Size (pie charts)
      <input type="number" name="holeSize" min="0" max="0.5" step="0.05" value="{{.DefaultHole}}">
    </label>
    <button type="submit">Generate Chart</button>
  </form>
{{else}}
  <p class="muted">Please upload a CSV file to proceed.</p>
{{end}}
</div>

<div class="main">
{{if .Preview}}
  <h3>Dataframe Preview</h3>
  <p class="muted">First {{len .Preview.Rows}} of {{.Preview.Total}} rows.</p>
  <table>
    <tr>{{range .Preview.Columns}}<th>{{.}}</th>{{end}}</tr>
    {{range .Preview.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
{{end}}
</div>
</body>
</html>
`))

var messageTemplate = template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Data Visualization</title></head>
<body style="font-family: sans-serif; padding: 2rem;">
<p>⚠️ {{.}}</p>
<p><a href="/">Back</a></p>
</body>
</html>
`))

// messagePage writes a user-visible diagnostic as a small HTML page.
func messagePage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	messageTemplate.Execute(w, msg)
}
