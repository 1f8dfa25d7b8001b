package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrHeaderTooLarge    = errors.New("serialization: header exceeds maximum size")
	ErrInvalidHeader     = errors.New("serialization: invalid header")
	ErrUnsupportedDType  = errors.New("serialization: unsupported dtype")
	ErrOutOfBounds       = errors.New("serialization: tensor extends beyond data section")
	ErrInvalidTensorName = errors.New("serialization: invalid tensor name")
	ErrTensorNotFound    = errors.New("serialization: tensor not found")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "offset_overlap", "out_of_bounds")
	Tensor  string // Primary tensor name involved
	Tensor2 string // Secondary tensor name (for overlap errors)
	Details string // Additional details
	Err     error  // Sentinel matched by errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Tensor2 != "" {
		return fmt.Sprintf("%s: tensors %q and %q: %s", e.Type, e.Tensor, e.Tensor2, e.Details)
	}
	if e.Tensor != "" {
		return fmt.Sprintf("%s: tensor %q: %s", e.Type, e.Tensor, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the sentinel error for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
