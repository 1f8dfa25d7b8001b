// Package loader reads tabular regression data into tensors.
//
// This package wraps the internal loader implementation and exports a clean
// public API for loading feature/target tables from CSV and TSV files.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/minitensor/loader"
//	    "github.com/born-ml/minitensor/nn"
//	)
//
//	ds, err := loader.LoadCSV("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layer, err := nn.FitLeastSquares(ds.Features, ds.Targets)
//	if err != nil {
//	    log.Fatal(err)
//	}
package loader

import (
	"io"

	"github.com/born-ml/minitensor/internal/loader"
)

// DataFormat represents the tabular file format.
type DataFormat = loader.DataFormat

// Supported data formats.
const (
	FormatUnknown = loader.FormatUnknown
	FormatCSV     = loader.FormatCSV
	FormatTSV     = loader.FormatTSV
)

// Dataset holds features [samples, features] and targets [samples, 1].
type Dataset = loader.Dataset

// Option configures ReadCSV and LoadCSV.
type Option = loader.Option

// Errors returned by this package.
var (
	ErrEmptyData         = loader.ErrEmptyData
	ErrTooFewColumns     = loader.ErrTooFewColumns
	ErrInvalidValue      = loader.ErrInvalidValue
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
)

// LoadCSV reads a dataset from a file, picking the delimiter from its extension.
//
// Example:
//
//	ds, err := loader.LoadCSV("data.tsv")
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	return loader.LoadCSV(path, opts...)
}

// ReadCSV reads a dataset from r. The last column is the target.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	return loader.ReadCSV(r, opts...)
}

// DetectFormat picks the data format from the file extension.
func DetectFormat(path string) (DataFormat, error) {
	return loader.DetectFormat(path)
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return loader.WithComma(r)
}

// WithComment sets the comment character.
func WithComment(r rune) Option {
	return loader.WithComment(r)
}
