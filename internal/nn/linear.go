package nn

import (
	"fmt"

	"github.com/born-ml/minitensor/internal/tensor"
)

// Predict evaluates the linear model Y = X @ W + b.
//
// X is [samples, features], W is [features, outputs] and b is anything that
// Add accepts against the product, typically a scalar. Errors from MatMul and
// Add are returned unchanged.
//
// Example:
//
//	x, _ := tensor.Matrix([][]float64{{1}, {2}, {3}, {4}})
//	w, _ := tensor.Matrix([][]float64{{2}})
//	y, _ := nn.Predict(x, w, tensor.Scalar(1.0)) // [[3], [5], [7], [9]]
func Predict[T tensor.Numeric](x, w, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	xw, err := x.MatMul(w)
	if err != nil {
		return nil, err
	}
	return xw.Add(b)
}

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is a scalar, or a vector with shape [out_features] added to every row
//   - y is the output tensor with shape [batch_size, out_features]
//
// Example:
//
//	w, _ := tensor.Matrix([][]float64{{2}})
//	layer, err := nn.NewLinear(w, tensor.Scalar(1.0))
//	output, err := layer.Forward(input) // shape: [batch_size, 1]
type Linear[T tensor.Numeric] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[T] // [in_features, out_features]
	bias        *Parameter[T] // [] or [out_features], nil when absent
}

// NewLinear creates a Linear layer from existing weights.
//
// Parameters:
//   - weight: 2D tensor with shape [in_features, out_features]
//   - bias: scalar, vector of length out_features, or nil for no bias
//
// Returns ErrWeightRank or ErrBiasShape for invalid parameters.
func NewLinear[T tensor.Numeric](weight, bias *tensor.Tensor[T]) (*Linear[T], error) {
	if weight == nil || weight.Rank() != 2 {
		return nil, fmt.Errorf("%w: got %v", ErrWeightRank, shapeOf(weight))
	}
	shape := weight.Shape()

	l := &Linear[T]{
		inFeatures:  shape[0],
		outFeatures: shape[1],
		weight:      NewParameter("weight", weight),
	}

	if bias != nil {
		switch {
		case bias.Rank() == 0:
		case bias.Rank() == 1 && bias.Shape()[0] == l.outFeatures:
		default:
			return nil, fmt.Errorf("%w: bias %v for %d outputs", ErrBiasShape, bias.Shape(), l.outFeatures)
		}
		l.bias = NewParameter("bias", bias)
	}

	return l, nil
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear[T]) Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	output, err := input.MatMul(l.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}

	if l.bias == nil {
		return output, nil
	}

	b := l.bias.Tensor()
	if b.Rank() == 1 {
		// Repeat the bias row so that it matches [batch_size, out_features].
		b, err = tileRows(b, output.Shape()[0])
		if err != nil {
			return nil, fmt.Errorf("linear: %w", err)
		}
	}

	output, err = output.Add(b)
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	return output, nil
}

// Parameters returns the parameters of this layer.
//
// Returns [weight, bias] if bias is present, otherwise [weight].
func (l *Linear[T]) Parameters() []*Parameter[T] {
	if l.bias != nil {
		return []*Parameter[T]{l.weight, l.bias}
	}
	return []*Parameter[T]{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear[T]) Weight() *Parameter[T] {
	return l.weight
}

// Bias returns the bias parameter, or nil if the layer has none.
func (l *Linear[T]) Bias() *Parameter[T] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[T]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[T]) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns a map of parameter names to tensors.
func (l *Linear[T]) StateDict() map[string]*tensor.Tensor[T] {
	stateDict := make(map[string]*tensor.Tensor[T], 2)
	for _, p := range l.Parameters() {
		stateDict[p.Name()] = p.Tensor()
	}
	return stateDict
}

// LoadStateDict replaces the parameters with tensors from a state dictionary.
//
// Shapes must match the current parameters exactly. A nil entry counts as
// missing.
func (l *Linear[T]) LoadStateDict(stateDict map[string]*tensor.Tensor[T]) error {
	params := l.Parameters()
	loaded := make([]*tensor.Tensor[T], len(params))

	for i, p := range params {
		t := stateDict[p.Name()]
		if t == nil {
			return fmt.Errorf("%w: %s", ErrMissingTensor, p.Name())
		}
		if !t.Shape().Equal(p.Shape()) {
			return fmt.Errorf("%w: %s: expected %v, got %v", ErrParameterShape, p.Name(), p.Shape(), t.Shape())
		}
		loaded[i] = t
	}

	for i, p := range params {
		p.tensor = loaded[i]
	}
	return nil
}

func tileRows[T tensor.Numeric](row *tensor.Tensor[T], n int) (*tensor.Tensor[T], error) {
	data := row.Data()
	tiled := make([]T, 0, n*len(data))
	for range n {
		tiled = append(tiled, data...)
	}
	return tensor.FromSlice(tiled, tensor.Shape{n, len(data)})
}

func shapeOf[T tensor.Numeric](t *tensor.Tensor[T]) any {
	if t == nil {
		return "nil"
	}
	return t.Shape()
}
