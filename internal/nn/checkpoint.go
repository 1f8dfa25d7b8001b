package nn

import (
	"fmt"
	"strconv"

	"github.com/born-ml/minitensor/internal/serialization"
	"github.com/born-ml/minitensor/internal/tensor"
)

// ModelType is recorded in the metadata of saved Linear layers.
const ModelType = "Linear"

// Save writes the layer parameters to a SafeTensors file.
//
// Tensors are stored as "weight" and, when present, "bias". A scalar bias
// keeps its empty shape.
//
// Example:
//
//	err := layer.Save("model.safetensors")
//	restored, err := nn.LoadLinear[float64]("model.safetensors")
func (l *Linear[T]) Save(path string) error {
	metadata := map[string]string{
		"model_type":   ModelType,
		"in_features":  strconv.Itoa(l.inFeatures),
		"out_features": strconv.Itoa(l.outFeatures),
		"dtype":        tensor.DTypeOf[T]().String(),
	}

	if err := serialization.WriteSafeTensors(path, l.StateDict(), metadata); err != nil {
		return fmt.Errorf("failed to save linear layer: %w", err)
	}
	return nil
}

// LoadLinear reads a Linear layer saved with Save.
//
// The stored dtype is converted to T. A missing "bias" tensor yields a layer
// without bias.
func LoadLinear[T tensor.Numeric](path string) (*Linear[T], error) {
	file, err := serialization.ReadSafeTensors[T](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load linear layer: %w", err)
	}

	weight, err := file.Tensor("weight")
	if err != nil {
		return nil, fmt.Errorf("failed to load linear layer: %w: %w", ErrMissingTensor, err)
	}
	bias := file.Tensors["bias"]

	return NewLinear(weight, bias)
}
