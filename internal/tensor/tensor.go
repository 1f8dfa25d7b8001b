package tensor

import (
	"fmt"
	"strings"
)

// Tensor is an immutable numeric array of rank 0, 1 or 2.
//
// The data is stored flat in row-major order; the shape is computed once at
// construction and never changes. Every constructor copies the caller's
// slices and every accessor returns a copy, so no two tensors ever share
// mutable storage.
//
// Example:
//
//	x, _ := tensor.Matrix([][]float64{{1}, {2}, {3}, {4}})
//	w, _ := tensor.Matrix([][]float64{{2}})
//	y, _ := x.MatMul(w)
//	y, _ = y.Add(tensor.Scalar(1.0)) // Tensor([[3], [5], [7], [9]])
type Tensor[T Numeric] struct {
	data  []T
	shape Shape
}

// newTensor takes ownership of data; callers must not retain it.
func newTensor[T Numeric](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{data: data, shape: shape}
}

// Scalar creates a rank-0 tensor with shape ().
func Scalar[T Numeric](v T) *Tensor[T] {
	return newTensor([]T{v}, Shape{})
}

// Vector creates a rank-1 tensor with shape (len(values),).
// An empty slice yields shape (0,).
func Vector[T Numeric](values []T) *Tensor[T] {
	data := make([]T, len(values))
	copy(data, values)
	return newTensor(data, Shape{len(values)})
}

// Matrix creates a rank-2 tensor with shape (len(rows), len(rows[0])).
//
// An empty slice has no row to take a width from and yields shape (0,),
// the same as an empty vector. Rows of unequal length are rejected with
// ErrRaggedShape.
func Matrix[T Numeric](rows [][]T) (*Tensor[T], error) {
	if len(rows) == 0 {
		return newTensor([]T{}, Shape{0}), nil
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, row 0 has %d", ErrRaggedShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return newTensor(data, Shape{len(rows), cols}), nil
}

// FromSlice creates a tensor from flat row-major data and an explicit shape.
// The slice is copied into the tensor.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return newTensor(buf, shape.Clone()), nil
}

// Cast converts every element of t to type U.
func Cast[U, T Numeric](t *Tensor[T]) *Tensor[U] {
	data := make([]U, len(t.data))
	for i, v := range t.data {
		data[i] = U(v)
	}
	return newTensor(data, t.shape.Clone())
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions (0, 1 or 2).
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// DType returns the runtime data type of the elements.
func (t *Tensor[T]) DType() DataType {
	return DTypeOf[T]()
}

// Data returns a row-major copy of the tensor's elements.
func (t *Tensor[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// Item returns the value of a scalar tensor.
func (t *Tensor[T]) Item() (T, error) {
	if t.Rank() != 0 {
		var zero T
		return zero, fmt.Errorf("item: %w: expected scalar, got shape %v", ErrRank, t.shape)
	}
	return t.data[0], nil
}

// At returns the element at the given indices.
// The number of indices must equal the rank.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	var zero T
	if len(indices) != t.Rank() {
		return zero, fmt.Errorf("at: %w: expected %d indices, got %d", ErrRank, t.Rank(), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return zero, fmt.Errorf("at: %w: index %d for dimension %d (size %d)",
				ErrIndexOutOfRange, idx, i, t.shape[i])
		}
		offset = offset*t.shape[i] + idx
	}
	return t.data[offset], nil
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the tensor as Tensor(<data>) with the nested data in list
// form, e.g. Tensor(1), Tensor([1, 2]), Tensor([[1, 2], [3, 4]]).
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Tensor(")
	switch t.Rank() {
	case 0:
		fmt.Fprint(&sb, t.data[0])
	case 1:
		writeList(&sb, t.data)
	default:
		cols := t.shape[1]
		sb.WriteByte('[')
		for i := 0; i < t.shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeList(&sb, t.data[i*cols:(i+1)*cols])
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(')')
	return sb.String()
}

func writeList[T Numeric](sb *strings.Builder, values []T) {
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteByte(']')
}
