package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DataFormat represents the tabular file format.
type DataFormat int

// Supported data formats.
const (
	FormatUnknown DataFormat = iota
	FormatCSV
	FormatTSV
)

// String returns the format name.
func (f DataFormat) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatTSV:
		return "TSV"
	default:
		return "Unknown"
	}
}

// Comma returns the field delimiter of the format.
func (f DataFormat) Comma() rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}

// DetectFormat picks the data format from the file extension.
func DetectFormat(path string) (DataFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q (expected .csv, .tsv or .txt)", ErrUnsupportedFormat, ext)
	}
}
