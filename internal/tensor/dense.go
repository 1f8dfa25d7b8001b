package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense converts a rank-2 tensor to a gonum dense matrix of float64.
// gonum does not represent matrices with a zero dimension, so those are
// rejected with ErrInvalidShape.
func (t *Tensor[T]) ToDense() (*mat.Dense, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("to dense: %w: expected 2D tensor, got shape %v", ErrRank, t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("to dense: %w: zero dimension in %v", ErrInvalidShape, t.shape)
	}

	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = float64(v)
	}
	return mat.NewDense(rows, cols, data), nil
}

// FromDense copies a gonum matrix into a float64 tensor of shape (rows, cols).
func FromDense(m mat.Matrix) *Tensor[float64] {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return newTensor(data, Shape{rows, cols})
}
