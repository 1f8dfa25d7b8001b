// Package nn implements linear models on top of the tensor package.
//
// This package provides:
//   - Module interface: Base interface for model components
//   - Parameter: Named tensors owned by a module
//   - Linear: Y = X @ W + b
//   - MSE: Mean squared error between predictions and targets
//   - Save/LoadLinear: SafeTensors persistence of a Linear layer
//
// Nothing here computes gradients. Weights come from literals, files or an
// external fitting procedure.
package nn

import (
	"github.com/born-ml/minitensor/internal/tensor"
)

// Module is the base interface for model components.
//
// Modules can be used interchangeably by callers that only need to run
// inference and inspect weights:
//
//	var m nn.Module[float64] = layer
//	y, err := m.Forward(x)
type Module[T tensor.Numeric] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// Shape violations are reported as errors, never as panics.
	Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Parameters returns the named tensors of this module in a stable order.
	Parameters() []*Parameter[T]
}
