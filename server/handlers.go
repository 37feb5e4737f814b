package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/radoslav1992/data-visualization-app/chart"
	"github.com/radoslav1992/data-visualization-app/dataset"
	"github.com/radoslav1992/data-visualization-app/render"
)

// ============================================================================
// HANDLERS
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// handleIndex serves the single page: upload form, and once a dataset is
// loaded, the chart options sidebar plus the optional data preview.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ds := s.current()

	data := indexData{
		Kinds:        chart.Kinds(),
		Palettes:     chart.PaletteNames(),
		DefaultWidth: chart.DefaultLineWidth,
		DefaultHole:  chart.DefaultHoleSize,
	}
	if ds != nil {
		data.Loaded = true
		data.Name = ds.Name
		data.Rows = ds.Rows()
		data.Columns = ds.ColumnNames()
		if r.URL.Query().Get("preview") == "1" {
			t := ds.Preview(previewRows)
			data.Preview = &t
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("index template: %v", err)
	}
}

// handleUpload replaces the current dataset with the uploaded file.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		messagePage(w, http.StatusBadRequest, "Please choose a CSV or XLSX file to upload.")
		return
	}
	defer file.Close()

	ds, err := dataset.Load(header.Filename, file)
	if err != nil {
		messagePage(w, http.StatusBadRequest, fmt.Sprintf("Could not read %s: %v", header.Filename, err))
		return
	}

	s.replace(ds)
	log.Printf("📊 Loaded %s: %d rows, %d columns", ds.Name, ds.Rows(), len(ds.Columns()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleChart builds and renders one chart from the submitted form.
// Unsuitable selections come back as a diagnostic page, not an error —
// the user changes the selection and retries.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ds := s.current()
	if ds == nil {
		messagePage(w, http.StatusBadRequest, "Please upload a CSV file to proceed.")
		return
	}

	if err := r.ParseForm(); err != nil {
		messagePage(w, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	kind, err := chart.ParseKind(r.Form.Get("kind"))
	if err != nil {
		messagePage(w, http.StatusBadRequest, err.Error())
		return
	}

	// Column selection: heatmaps pick their own columns, every other
	// kind takes the two selected axes.
	x, y := r.Form.Get("x"), r.Form.Get("y")
	if !kind.NeedsAxes() {
		x, y = "", ""
	}

	req := chart.Request{
		Kind:      kind,
		X:         x,
		Y:         y,
		LineWidth: formInt(r, "lineWidth", chart.DefaultLineWidth),
		HoleSize:  formFloat(r, "holeSize", chart.DefaultHoleSize),
		Title:     r.Form.Get("title"),
		Palette:   r.Form.Get("palette"),
	}

	res := chart.Build(ds, req)
	if !res.OK() {
		messagePage(w, http.StatusUnprocessableEntity, res.Diagnostic.Message)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Chart(w, res.Chart); err != nil {
		log.Printf("render %s: %v", req.Kind, err)
	}
}

// columnInfo is the JSON shape for the axis dropdowns.
type columnInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Missing int    `json:"missing"`
}

// handleColumns reports column names and inferred types as JSON.
func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	ds := s.current()
	if ds == nil {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return
	}

	cols := ds.Columns()
	out := make([]columnInfo, len(cols))
	for i, c := range cols {
		out[i] = columnInfo{Name: c.Name, Type: c.Type.String(), Missing: c.Missing}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handlePreview reports the first rows as JSON.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	ds := s.current()
	if ds == nil {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return
	}

	limit := previewRows
	if v, err := strconv.Atoi(r.URL.Query().Get("rows")); err == nil && v > 0 {
		limit = v
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ds.Preview(limit))
}

// previewRows is how many rows the preview shows by default.
const previewRows = 10

func formInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		return def
	}
	return v
}

func formFloat(r *http.Request, key string, def float64) float64 {
	v, err := strconv.ParseFloat(r.Form.Get(key), 64)
	if err != nil {
		return def
	}
	return v
}
