package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/minitensor/internal/tensor"
)

// Dataset holds a regression dataset split into features and targets.
type Dataset struct {
	Features *tensor.Tensor[float64] // [samples, features]
	Targets  *tensor.Tensor[float64] // [samples, 1]
	Header   []string                // Column names, nil when the input had no header
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return d.Features.Shape()[0]
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	return d.Features.Shape()[1]
}

// Option configures ReadCSV and LoadCSV.
type Option func(*options)

type options struct {
	comma    rune
	commaSet bool
	comment  rune
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *options) {
		o.comma = r
		o.commaSet = true
	}
}

// WithComment sets the comment character; lines starting with it are ignored.
func WithComment(r rune) Option {
	return func(o *options) {
		o.comment = r
	}
}

// LoadCSV reads a dataset from a file.
//
// The delimiter is taken from the extension unless WithComma is given.
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	o := newOptions(opts)
	if !o.commaSet {
		format, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithComma(format.Comma()))
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for data loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close for a read-only file
	}()

	return ReadCSV(file, opts...)
}

// ReadCSV reads a dataset from r.
//
// Every row must have the same number of columns, at least two. The last
// column is the target; all others are features.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	o := newOptions(opts)

	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.Comment = o.comment
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	ds := &Dataset{}
	var (
		features []float64
		targets  []float64
		cols     int
		rows     int
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if cols == 0 {
			if len(record) < 2 {
				return nil, fmt.Errorf("%w: line %d has %d", ErrTooFewColumns, line, len(record))
			}
			cols = len(record)
			if !isNumber(record[0]) {
				ds.Header = append([]string(nil), record...)
				continue
			}
		}

		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrInvalidValue, line, j+1, cell)
			}
			if j == cols-1 {
				targets = append(targets, v)
			} else {
				features = append(features, v)
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmptyData
	}

	var err error
	if ds.Features, err = tensor.FromSlice(features, tensor.Shape{rows, cols - 1}); err != nil {
		return nil, err
	}
	if ds.Targets, err = tensor.FromSlice(targets, tensor.Shape{rows, 1}); err != nil {
		return nil, err
	}
	return ds, nil
}

func newOptions(opts []Option) *options {
	o := &options{comma: ','}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func isNumber(cell string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return err == nil
}
