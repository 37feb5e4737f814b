package dataset

import "errors"

// Sentinel errors returned by the loaders.
var (
	// ErrNoHeader means the file had no header row to name columns from.
	ErrNoHeader = errors.New("dataset: missing header row")
	// ErrNoColumns means the header row was present but empty.
	ErrNoColumns = errors.New("dataset: no columns")
	// ErrNoRows means the file had a header but no data rows.
	ErrNoRows = errors.New("dataset: no data rows")
	// ErrUnsupportedFormat means the file extension is neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")
)
