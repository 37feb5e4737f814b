package chart

// ============================================================================
// STYLE APPLICATOR — Title + palette on a built chart
// ============================================================================

// ApplyStyle sets the chart's title and color sequence.
// The title is taken verbatim; the palette name is resolved with the
// usual Plotly3 fallback. Safe on a nil chart and idempotent: applying
// the same style twice leaves the chart in the same state.
func ApplyStyle(c *Config, title, palette string) *Config {
	if c == nil {
		return nil
	}
	c.Title = title
	c.Colors = ResolvePalette(palette)
	return c
}
