// Package dataviz is a single-page interactive data-visualization tool.
//
// Usage:
//
//	dataviz serve --addr :8080
//
// Upload a CSV or XLSX file in the browser, pick a chart kind
// (line, bar, pie, heatmap), axis columns, a title and a palette,
// and the tool renders an interactive chart — or a plain diagnostic
// when the selection doesn't suit the data.
//
// The pipeline is: dataset load → column selection → chart build →
// style application → render. Every render is a pure function of the
// current dataset and the submitted request; nothing persists between
// renders and no external service is ever called.
package dataviz
