package nn

import (
	"github.com/born-ml/minitensor/internal/tensor"
)

// Parameter is a named tensor owned by a module.
//
// Example:
//
//	weight := nn.NewParameter("weight", w)
//	w := weight.Tensor()
type Parameter[T tensor.Numeric] struct {
	name   string            // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[T] // The parameter tensor
}

// NewParameter creates a new parameter.
func NewParameter[T tensor.Numeric](name string, t *tensor.Tensor[T]) *Parameter[T] {
	return &Parameter[T]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
//
// Tensors are immutable, so the returned value can be shared freely.
func (p *Parameter[T]) Tensor() *tensor.Tensor[T] {
	return p.tensor
}

// Shape returns the shape of the parameter tensor.
func (p *Parameter[T]) Shape() tensor.Shape {
	return p.tensor.Shape()
}
