package loader

import "errors"

// Common errors.
var (
	ErrEmptyData         = errors.New("loader: no data rows")
	ErrTooFewColumns     = errors.New("loader: need at least one feature and one target column")
	ErrInvalidValue      = errors.New("loader: invalid numeric value")
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")
)
