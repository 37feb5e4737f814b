package chart

// ============================================================================
// PALETTES — Six named sequential color scales
// ============================================================================

// DefaultPalette is used whenever a palette name isn't recognized.
const DefaultPalette = "Plotly3"

var palettes = map[string][]string{
	"Plotly3": {
		"#0508b8", "#3c19f0", "#6b1cfb", "#981cfd", "#bf1cfd",
		"#dd2bfd", "#f246fe", "#fc67fd", "#fe88fc", "#fea5fd",
	},
	"Plasma": {
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
	},
	"Viridis": {
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	},
	"Cividis": {
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838",
	},
	"Inferno": {
		"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d03c", "#fcffa4",
	},
	"Magma": {
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf",
	},
}

// paletteOrder fixes the UI listing; map iteration is random.
var paletteOrder = []string{"Plotly3", "Plasma", "Viridis", "Cividis", "Inferno", "Magma"}

// PaletteNames lists the available palette names in UI order.
func PaletteNames() []string {
	out := make([]string, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// ResolvePalette returns the colors for a named palette.
// Unrecognized names fall back to Plotly3, silently.
func ResolvePalette(name string) []string {
	if colors, ok := palettes[name]; ok {
		return colors
	}
	return palettes[DefaultPalette]
}
