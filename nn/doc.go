// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides linear models built on the tensor package.
//
// # Overview
//
// This package contains:
//   - Predict: the functional form Y = X @ W + b
//   - Linear: a layer holding weight and bias parameters
//   - MSE: mean squared error between predictions and targets
//   - FitLeastSquares: closed-form fit of a Linear layer
//   - Save/LoadLinear: SafeTensors persistence
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/minitensor/nn"
//	    "github.com/born-ml/minitensor/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.Matrix([][]float64{{1}, {2}, {3}, {4}})
//	    w, _ := tensor.Matrix([][]float64{{2}})
//
//	    y, err := nn.Predict(x, w, tensor.Scalar(1.0))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(y) // Tensor([[3], [5], [7], [9]])
//	}
//
// # Layers
//
// Linear wraps existing weights. The bias is a scalar, a vector with one
// entry per output, or nil:
//
//	layer, err := nn.NewLinear(w, tensor.Scalar(1.0))
//	output, err := layer.Forward(x)
//
// # Fitting
//
// There is no gradient-based training. FitLeastSquares solves the least
// squares system directly:
//
//	layer, err := nn.FitLeastSquares(features, targets)
//	predictions, err := layer.Forward(features)
//	loss, err := nn.MSE(predictions, targets)
//
// # Persistence
//
// Layers are stored as SafeTensors files with tensors "weight" and "bias":
//
//	err := layer.Save("model.safetensors")
//	layer, err := nn.LoadLinear[float64]("model.safetensors")
package nn
