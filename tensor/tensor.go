// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations.
//
// The package re-exports the core types from the internal implementation:
//   - Tensor[T]: immutable rank ≤ 2 tensor
//   - Shape, DataType: core type definitions
//   - sentinel errors for shape and rank violations
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/minitensor/internal/tensor"
)

// Numeric is a constraint for tensor element types.
// Supported types: int, int32, int64, float32, float64 and types derived from them.
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns; Shape{} is a scalar.
type Shape = tensor.Shape

// MaxRank is the highest supported rank.
const MaxRank = tensor.MaxRank

// Tensor is an immutable numeric tensor of rank 0, 1 or 2.
type Tensor[T Numeric] = tensor.Tensor[T]

// Errors returned by tensor operations.
var (
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrRank              = tensor.ErrRank
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrRaggedShape       = tensor.ErrRaggedShape
	ErrRankTooHigh       = tensor.ErrRankTooHigh
	ErrInvalidData       = tensor.ErrInvalidData
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
)

// Scalar creates a rank-0 tensor.
//
// Example:
//
//	b := tensor.Scalar(1.0) // shape ()
func Scalar[T Numeric](v T) *Tensor[T] {
	return tensor.Scalar(v)
}

// Vector creates a rank-1 tensor from a copy of values.
//
// Example:
//
//	v := tensor.Vector([]int{1, 2, 3}) // shape (3,)
func Vector[T Numeric](values []T) *Tensor[T] {
	return tensor.Vector(values)
}

// Matrix creates a rank-2 tensor from a copy of rows.
// Rows of unequal length are rejected with ErrRaggedShape.
//
// Example:
//
//	w, err := tensor.Matrix([][]float64{{2}}) // shape (1, 1)
func Matrix[T Numeric](rows [][]T) (*Tensor[T], error) {
	return tensor.Matrix(rows)
}

// FromSlice creates a tensor from flat row-major data and a shape.
//
// Example:
//
//	m, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromNested creates a tensor from a nested literal: a number, a sequence of
// numbers or a sequence of equal-length sequences of numbers. Values decoded
// by encoding/json are accepted.
//
// Example:
//
//	var v any
//	_ = json.Unmarshal([]byte(`[[1, 2], [3, 4]]`), &v)
//	m, err := tensor.FromNested[float64](v) // shape (2, 2)
func FromNested[T Numeric](data any) (*Tensor[T], error) {
	return tensor.FromNested[T](data)
}

// FromDense copies a gonum matrix into a float64 tensor.
func FromDense(m mat.Matrix) *Tensor[float64] {
	return tensor.FromDense(m)
}

// Cast converts the elements of t to type U.
//
// Example:
//
//	f := tensor.Cast[float64](tensor.Vector([]int{1, 2}))
func Cast[U, T Numeric](t *Tensor[T]) *Tensor[U] {
	return tensor.Cast[U](t)
}
