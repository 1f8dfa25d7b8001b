package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/minitensor/internal/tensor"
)

// FitLeastSquares solves for the Linear layer that minimizes the squared error
// between x @ W + b and targets.
//
// x has shape [samples, features] and targets [samples, outputs]. The bias is
// a scalar for a single output and a vector of length outputs otherwise. The
// system is solved directly with gonum; there is no iterative training.
func FitLeastSquares(x, targets *tensor.Tensor[float64]) (*Linear[float64], error) {
	if x.Rank() != 2 || targets.Rank() != 2 {
		return nil, fmt.Errorf("fit: %w: x %v, targets %v", tensor.ErrRank, x.Shape(), targets.Shape())
	}
	xs, ys := x.Shape(), targets.Shape()
	samples, features, outputs := xs[0], xs[1], ys[1]
	if samples == 0 || features == 0 || outputs == 0 {
		return nil, fmt.Errorf("fit: %w", ErrEmpty)
	}
	if ys[0] != samples {
		return nil, fmt.Errorf("fit: %w: %d samples vs %d targets", tensor.ErrShapeMismatch, samples, ys[0])
	}

	xd, err := x.ToDense()
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	yd, err := targets.ToDense()
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	// Design matrix [x | 1] so the last coefficient row is the bias.
	ones := make([]float64, samples)
	for i := range ones {
		ones[i] = 1
	}
	var design mat.Dense
	design.Augment(xd, mat.NewDense(samples, 1, ones))

	var coef mat.Dense
	if err := coef.Solve(&design, yd); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	weight := tensor.FromDense(coef.Slice(0, features, 0, outputs))
	biasRow := mat.Row(nil, features, &coef)

	var bias *tensor.Tensor[float64]
	if outputs == 1 {
		bias = tensor.Scalar(biasRow[0])
	} else {
		bias = tensor.Vector(biasRow)
	}
	return NewLinear(weight, bias)
}
