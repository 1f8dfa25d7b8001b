package tensor

import "errors"

// Sentinel errors returned by tensor construction and arithmetic.
// Operations wrap them with context; match with errors.Is.
var (
	// ErrShapeMismatch is returned when two non-scalar operands of an
	// elementwise operation have different shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrRank is returned when an operation needs a specific rank, e.g.
	// MatMul on anything but two matrices, or Item on a non-scalar.
	ErrRank = errors.New("tensor: unsupported rank for operation")

	// ErrDimensionMismatch is returned when matrix multiplication inner
	// dimensions disagree.
	ErrDimensionMismatch = errors.New("tensor: inner dimension mismatch")

	// ErrRaggedShape is returned when the rows of a matrix literal differ in length.
	ErrRaggedShape = errors.New("tensor: ragged rows")

	// ErrRankTooHigh is returned for data nested deeper than two levels.
	ErrRankTooHigh = errors.New("tensor: rank above 2 is not supported")

	// ErrInvalidData is returned for literals holding non-numeric values.
	ErrInvalidData = errors.New("tensor: invalid data")

	// ErrInvalidShape is returned when a shape has negative dimensions or
	// does not match the number of elements supplied.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrIndexOutOfRange is returned by At for bad indices.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
)
