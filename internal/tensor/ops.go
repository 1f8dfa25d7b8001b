package tensor

import (
	"fmt"

	"github.com/born-ml/minitensor/internal/backend/cpu"
)

// Add performs element-wise addition.
//
// A scalar tensor on either side is broadcast to every element of the other
// operand, and the result takes the other operand's shape. Otherwise both
// shapes must be equal.
//
// Example:
//
//	a := tensor.Vector([]int{1, 2, 3})
//	b, _ := a.Add(tensor.Scalar(5)) // Tensor([6, 7, 8])
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("add", other, func(a, b T) T { return a + b })
}

// Sub performs element-wise subtraction with the same broadcasting rules as Add.
// When t is the scalar, each element of other is subtracted from it.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("sub", other, func(a, b T) T { return a - b })
}

// Mul performs element-wise multiplication with the same broadcasting rules as Add.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("mul", other, func(a, b T) T { return a * b })
}

// AddScalar adds s to every element. s + t is the same operation.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	return t.Map(func(a T) T { return a + s })
}

// SubScalar subtracts s from every element (t - s).
func (t *Tensor[T]) SubScalar(s T) *Tensor[T] {
	return t.Map(func(a T) T { return a - s })
}

// ScalarSub subtracts every element from s (s - t).
func (t *Tensor[T]) ScalarSub(s T) *Tensor[T] {
	return t.Map(func(a T) T { return s - a })
}

// MulScalar multiplies every element by s. s * t is the same operation.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return t.Map(func(a T) T { return a * s })
}

// Zip applies fn to each pair of corresponding elements of two tensors of
// equal shape and returns the results in a new tensor of that shape.
func (t *Tensor[T]) Zip(other *Tensor[T], fn func(a, b T) T) (*Tensor[T], error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, t.shape, other.shape)
	}
	out := make([]T, len(t.data))
	cpu.Zip(out, t.data, other.data, fn)
	return newTensor(out, t.shape.Clone()), nil
}

// Map applies fn to every element and returns the results in a new tensor of
// the same shape.
func (t *Tensor[T]) Map(fn func(a T) T) *Tensor[T] {
	out := make([]T, len(t.data))
	cpu.Map(out, t.data, fn)
	return newTensor(out, t.shape.Clone())
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) → (M, N).
//
// Both operands must be rank 2 (ErrRank) and the inner dimensions must agree
// (ErrDimensionMismatch).
//
// Example:
//
//	a, _ := tensor.Matrix([][]int{{1, 2}, {3, 4}})
//	b, _ := tensor.Matrix([][]int{{5, 6}, {7, 8}})
//	c, _ := a.MatMul(b) // Tensor([[19, 22], [43, 50]])
func (t *Tensor[T]) MatMul(other *Tensor[T]) (*Tensor[T], error) {
	if t.Rank() != 2 || other.Rank() != 2 {
		return nil, fmt.Errorf("matmul: %w: only 2D tensors supported, got %dD and %dD",
			ErrRank, t.Rank(), other.Rank())
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul: %w: %v @ %v", ErrDimensionMismatch, t.shape, other.shape)
	}

	out := make([]T, m*n)
	cpu.MatMul(out, t.data, other.data, m, k, n)
	return newTensor(out, Shape{m, n}), nil
}

// Sum returns the sum of all elements as a scalar tensor.
func (t *Tensor[T]) Sum() *Tensor[T] {
	return Scalar(cpu.Sum(t.data))
}

// binary dispatches an elementwise operation, broadcasting scalar operands.
func (t *Tensor[T]) binary(op string, other *Tensor[T], fn func(a, b T) T) (*Tensor[T], error) {
	switch {
	case other.Rank() == 0:
		s := other.data[0]
		return t.Map(func(a T) T { return fn(a, s) }), nil
	case t.Rank() == 0:
		s := t.data[0]
		return other.Map(func(b T) T { return fn(s, b) }), nil
	}

	out, err := t.Zip(other, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
