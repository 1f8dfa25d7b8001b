package nn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/minitensor/internal/serialization"
	"github.com/born-ml/minitensor/internal/tensor"
)

func TestSaveLoadLinear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.safetensors")

	w, err := tensor.Matrix([][]float64{{2}})
	require.NoError(t, err)
	layer, err := NewLinear(w, tensor.Scalar(1.0))
	require.NoError(t, err)
	require.NoError(t, layer.Save(path))

	restored, err := LoadLinear[float64](path)
	require.NoError(t, err)

	assert.True(t, restored.Weight().Tensor().Equal(w))
	require.NotNil(t, restored.Bias())
	assert.Equal(t, tensor.Shape{}, restored.Bias().Shape())
	assert.True(t, restored.Bias().Tensor().Equal(tensor.Scalar(1.0)))

	x, err := tensor.Matrix([][]float64{{1}, {2}, {3}, {4}})
	require.NoError(t, err)
	y, err := restored.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, "Tensor([[3], [5], [7], [9]])", y.String())

	file, err := serialization.ReadSafeTensors[float64](path)
	require.NoError(t, err)
	assert.Equal(t, ModelType, file.Metadata["model_type"])
	assert.Equal(t, "1", file.Metadata["in_features"])
	assert.Equal(t, "float64", file.Metadata["dtype"])
}

func TestLoadLinear_ConvertsDType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "int.safetensors")

	w, err := tensor.Matrix([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	layer, err := NewLinear(w, tensor.Vector([]int32{5, 6}))
	require.NoError(t, err)
	require.NoError(t, layer.Save(path))

	restored, err := LoadLinear[float32](path)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, restored.Weight().Tensor().Data())
	assert.Equal(t, []float32{5, 6}, restored.Bias().Tensor().Data())
}

func TestLoadLinear_NoBias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nobias.safetensors")

	w, err := tensor.Matrix([][]float64{{1}})
	require.NoError(t, err)
	layer, err := NewLinear(w, nil)
	require.NoError(t, err)
	require.NoError(t, layer.Save(path))

	restored, err := LoadLinear[float64](path)
	require.NoError(t, err)
	assert.Nil(t, restored.Bias())
}

func TestLoadLinear_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadLinear[float64](filepath.Join(dir, "missing.safetensors"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "noweight.safetensors")
	require.NoError(t, serialization.WriteSafeTensors(path,
		map[string]*tensor.Tensor[float64]{"bias": tensor.Scalar(1.0)}, nil))
	_, err = LoadLinear[float64](path)
	assert.ErrorIs(t, err, ErrMissingTensor)
	assert.ErrorIs(t, err, serialization.ErrTensorNotFound)

	path = filepath.Join(dir, "vectorweight.safetensors")
	require.NoError(t, serialization.WriteSafeTensors(path,
		map[string]*tensor.Tensor[float64]{"weight": tensor.Vector([]float64{1})}, nil))
	_, err = LoadLinear[float64](path)
	assert.ErrorIs(t, err, ErrWeightRank)
}
