package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// TYPE INFERENCE — Heuristic column classification
// ============================================================================
// Inspects the raw values of each column and classifies it as Numeric,
// Text, or Empty. Needs 80%+ of non-missing values to parse as numbers
// for a Numeric verdict; a single stray footnote row shouldn't demote
// an otherwise numeric column.
// ============================================================================

// numericThreshold is the fraction of non-missing values that must parse
// as numbers for a column to be classified Numeric.
const numericThreshold = 0.8

// missingTokens are cell values treated as missing, besides "".
var missingTokens = map[string]bool{
	"null": true,
	"NULL": true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
}

// isMissing reports whether a trimmed cell value counts as missing.
func isMissing(s string) bool {
	return s == "" || missingTokens[s]
}

// parseNumber parses a cell as float64, tolerating thousands separators
// and a leading currency symbol ("$1,234.56").
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	for _, prefix := range []string{"$", "€", "£"} {
		if rest, found := strings.CutPrefix(s, prefix); found {
			s = rest
			break
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// finishColumn normalizes raw cell text, parses numbers, counts missing
// cells, and classifies the column type.
func finishColumn(name string, raw []string) *Column {
	col := &Column{
		Name:   name,
		Values: make([]string, len(raw)),
		floats: make([]float64, len(raw)),
	}

	parsed := 0
	present := 0
	for i, v := range raw {
		v = strings.TrimSpace(v)
		if isMissing(v) {
			col.Values[i] = ""
			col.floats[i] = math.NaN()
			col.Missing++
			continue
		}
		col.Values[i] = v
		present++
		if f, ok := parseNumber(v); ok {
			col.floats[i] = f
			parsed++
		} else {
			col.floats[i] = math.NaN()
		}
	}

	switch {
	case present == 0:
		col.Type = Empty
	case float64(parsed) >= numericThreshold*float64(present):
		col.Type = Numeric
	default:
		col.Type = Text
	}
	return col
}
