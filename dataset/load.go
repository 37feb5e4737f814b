package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ============================================================================
// LOADER — Format dispatch by file extension
// ============================================================================

// Load reads a dataset from r, choosing the parser by the extension of
// filename (.csv or .xlsx). The dataset's Name is the bare file name.
func Load(filename string, r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", filename, err)
	}

	name := filepath.Base(filename)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FromCSV(name, data)
	case ".xlsx":
		return FromXLSX(name, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
