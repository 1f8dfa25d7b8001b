// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/minitensor/internal/nn"
	"github.com/born-ml/minitensor/tensor"
)

// Module interface defines the common interface for model components.
type Module[T tensor.Numeric] = nn.Module[T]

// Parameter is a named tensor owned by a module.
type Parameter[T tensor.Numeric] = nn.Parameter[T]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[T tensor.Numeric](name string, t *tensor.Tensor[T]) *Parameter[T] {
	return nn.NewParameter(name, t)
}

// Linear represents a fully connected (dense) layer: y = x @ W + b.
type Linear[T tensor.Numeric] = nn.Linear[T]

// NewLinear creates a Linear layer from a [in, out] weight and an optional bias.
//
// Example:
//
//	w, _ := tensor.Matrix([][]float64{{2}})
//	layer, err := nn.NewLinear(w, tensor.Scalar(1.0))
func NewLinear[T tensor.Numeric](weight, bias *tensor.Tensor[T]) (*Linear[T], error) {
	return nn.NewLinear(weight, bias)
}

// Predict evaluates Y = X @ W + b, returning tensor errors unchanged.
func Predict[T tensor.Numeric](x, w, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return nn.Predict(x, w, b)
}

// MSE computes the mean squared error between predictions and targets.
func MSE[T tensor.Numeric](predictions, targets *tensor.Tensor[T]) (float64, error) {
	return nn.MSE(predictions, targets)
}

// FitLeastSquares fits a Linear layer to features and targets in closed form.
func FitLeastSquares(x, targets *tensor.Tensor[float64]) (*Linear[float64], error) {
	return nn.FitLeastSquares(x, targets)
}

// LoadLinear reads a Linear layer saved with Linear.Save, converting to T.
func LoadLinear[T tensor.Numeric](path string) (*Linear[T], error) {
	return nn.LoadLinear[T](path)
}

// ModelType is recorded in the metadata of saved Linear layers.
const ModelType = nn.ModelType

// Errors returned by this package.
var (
	ErrEmpty          = nn.ErrEmpty
	ErrMissingTensor  = nn.ErrMissingTensor
	ErrBiasShape      = nn.ErrBiasShape
	ErrWeightRank     = nn.ErrWeightRank
	ErrParameterShape = nn.ErrParameterShape
)
