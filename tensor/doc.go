// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides immutable numeric tensors of rank 0, 1 and 2.
//
// # Overview
//
// A Tensor stores a scalar, a vector or a matrix of one of the Numeric element
// types (int, int32, int64, float32, float64) together with its shape, which
// is inferred once when the tensor is built:
//
//	tensor.Scalar(5)                           // shape ()
//	tensor.Vector([]float64{})                 // shape (0,)
//	tensor.Vector([]int{1, 2, 3})              // shape (3,)
//	tensor.Matrix([][]int{{1, 2}, {3, 4}})     // shape (2, 2)
//	tensor.FromNested[float64](jsonValue)      // shape from the literal
//
// # Arithmetic
//
// Add, Sub and Mul work element-wise on operands of equal shape. A scalar
// tensor on either side is broadcast over the other operand:
//
//	v := tensor.Vector([]int{1, 2, 3})
//	w, _ := v.Add(tensor.Scalar(5))   // Tensor([6, 7, 8])
//	w, _ = tensor.Scalar(5).Add(v)    // Tensor([6, 7, 8])
//
// Raw Go scalars use the *Scalar forms:
//
//	v.AddScalar(1)    // v + 1 (and 1 + v)
//	v.SubScalar(1)    // v - 1
//	v.ScalarSub(1)    // 1 - v
//	v.MulScalar(2)    // v * 2 (and 2 * v)
//
// MatMul multiplies two matrices with compatible inner dimensions:
//
//	a, _ := tensor.Matrix([][]int{{1, 2}, {3, 4}})
//	b, _ := tensor.Matrix([][]int{{5, 6}, {7, 8}})
//	c, _ := a.MatMul(b)               // Tensor([[19, 22], [43, 50]])
//
// # Errors
//
// Operations never panic on bad input; they return errors wrapping one of the
// sentinels below, to be matched with errors.Is:
//   - ErrShapeMismatch: element-wise operands with different shapes
//   - ErrRank: MatMul on a non-matrix, Item on a non-scalar
//   - ErrDimensionMismatch: MatMul inner dimensions differ
//   - ErrRaggedShape: matrix rows of different lengths
//   - ErrRankTooHigh: data nested deeper than a matrix
//
// # Immutability
//
// Tensors have no mutating methods. Constructors copy their input, accessors
// return copies, and every operation allocates its result, so tensors can be
// shared freely between goroutines.
package tensor
