package nn

import (
	"fmt"

	"github.com/born-ml/minitensor/internal/tensor"
)

// MSE computes the Mean Squared Error between predictions and targets.
//
// Loss = mean((predictions - targets)²)
//
// Predictions and targets must have the same shape; a scalar is not broadcast
// here. Returns ErrEmpty when there are no elements to average.
//
// Example:
//
//	predictions, _ := layer.Forward(x)
//	loss, err := nn.MSE(predictions, targets)
func MSE[T tensor.Numeric](predictions, targets *tensor.Tensor[T]) (float64, error) {
	if !predictions.Shape().Equal(targets.Shape()) {
		return 0, fmt.Errorf("mse: %w: predictions %v vs targets %v",
			tensor.ErrShapeMismatch, predictions.Shape(), targets.Shape())
	}
	n := predictions.NumElements()
	if n == 0 {
		return 0, fmt.Errorf("mse: %w", ErrEmpty)
	}

	// Promote to float64 first so integer differences cannot overflow when squared.
	diff, err := tensor.Cast[float64](predictions).Sub(tensor.Cast[float64](targets))
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	squared, err := diff.Mul(diff)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}

	sum, err := squared.Sum().Item()
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	return sum / float64(n), nil
}
