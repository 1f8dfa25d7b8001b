package nn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/minitensor/internal/nn"
	"github.com/born-ml/minitensor/internal/tensor"
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func matrix[T tensor.Numeric](t *testing.T, rows [][]T) *tensor.Tensor[T] {
	t.Helper()
	m, err := tensor.Matrix(rows)
	if err != nil {
		t.Fatalf("Matrix(%v) failed: %v", rows, err)
	}
	return m
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	data := tensor.Vector([]float64{1, 2, 3})
	param := nn.NewParameter("test_param", data)

	if param.Name() != "test_param" {
		t.Errorf("Name() = %s, want test_param", param.Name())
	}
	if param.Tensor() != data {
		t.Error("Tensor() should return the original tensor")
	}
	if !param.Shape().Equal(tensor.Shape{3}) {
		t.Errorf("Shape() = %v, want (3,)", param.Shape())
	}
}

// TestPredict tests the Y = X @ W + b example end to end.
func TestPredict(t *testing.T) {
	x := matrix(t, [][]float64{{1}, {2}, {3}, {4}})
	w := matrix(t, [][]float64{{2}})

	y, err := nn.Predict(x, w, tensor.Scalar(1.0))
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if got, want := y.String(), "Tensor([[3], [5], [7], [9]])"; got != want {
		t.Errorf("Predict = %s, want %s", got, want)
	}
	if !y.Shape().Equal(tensor.Shape{4, 1}) {
		t.Errorf("shape = %v, want (4, 1)", y.Shape())
	}
}

// TestPredict_Errors tests that tensor errors propagate unchanged.
func TestPredict_Errors(t *testing.T) {
	x := matrix(t, [][]int{{1, 2}})
	w := matrix(t, [][]int{{1}})

	if _, err := nn.Predict(x, w, tensor.Scalar(0)); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}

	if _, err := nn.Predict(tensor.Vector([]int{1}), w, tensor.Scalar(0)); !errors.Is(err, tensor.ErrRank) {
		t.Errorf("expected ErrRank, got %v", err)
	}

	w2 := matrix(t, [][]int{{1}, {1}})
	if _, err := nn.Predict(x, w2, tensor.Vector([]int{1, 2})); !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

// TestLinear tests Linear layer creation and forward pass.
func TestLinear(t *testing.T) {
	layer, err := nn.NewLinear(matrix(t, [][]float64{{2}}), tensor.Scalar(1.0))
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	if layer.InFeatures() != 1 || layer.OutFeatures() != 1 {
		t.Errorf("features = (%d, %d), want (1, 1)", layer.InFeatures(), layer.OutFeatures())
	}
	if len(layer.Parameters()) != 2 {
		t.Errorf("Parameters() length = %d, want 2", len(layer.Parameters()))
	}

	y, err := layer.Forward(matrix(t, [][]float64{{1}, {2}, {3}, {4}}))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	want := []float64{3, 5, 7, 9}
	for i, v := range y.Data() {
		if v != want[i] {
			t.Errorf("output[%d] = %v, want %v", i, v, want[i])
		}
	}
}

// TestLinear_VectorBias tests that a per-output bias is added to every row.
func TestLinear_VectorBias(t *testing.T) {
	w := matrix(t, [][]int{{1, 0, 2}, {0, 1, 3}})
	layer, err := nn.NewLinear(w, tensor.Vector([]int{10, 20, 30}))
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	y, err := layer.Forward(matrix(t, [][]int{{1, 1}, {2, 0}}))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	want := matrix(t, [][]int{{11, 21, 35}, {12, 20, 34}})
	if !y.Equal(want) {
		t.Errorf("Forward = %s, want %s", y, want)
	}
}

// TestLinear_NoBias tests a Linear layer without bias.
func TestLinear_NoBias(t *testing.T) {
	layer, err := nn.NewLinear(matrix(t, [][]int{{3}}), nil)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}
	if layer.Bias() != nil {
		t.Error("Bias() should be nil")
	}
	if len(layer.Parameters()) != 1 {
		t.Errorf("Parameters() length = %d, want 1", len(layer.Parameters()))
	}

	y, err := layer.Forward(matrix(t, [][]int{{2}}))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if v, _ := y.At(0, 0); v != 6 {
		t.Errorf("output = %d, want 6", v)
	}
}

// TestNewLinear_Invalid tests parameter validation.
func TestNewLinear_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		weight *tensor.Tensor[float64]
		bias   *tensor.Tensor[float64]
		want   error
	}{
		{"nil weight", nil, nil, nn.ErrWeightRank},
		{"vector weight", tensor.Vector([]float64{1, 2}), nil, nn.ErrWeightRank},
		{"scalar weight", tensor.Scalar(1.0), nil, nn.ErrWeightRank},
		{"bias too long", matrix(t, [][]float64{{1}}), tensor.Vector([]float64{1, 2}), nn.ErrBiasShape},
		{"matrix bias", matrix(t, [][]float64{{1}}), matrix(t, [][]float64{{1}}), nn.ErrBiasShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := nn.NewLinear(tt.weight, tt.bias); !errors.Is(err, tt.want) {
				t.Errorf("NewLinear error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestLinear_ForwardErrors tests that malformed input is reported, not panicked on.
func TestLinear_ForwardErrors(t *testing.T) {
	layer, err := nn.NewLinear(matrix(t, [][]float64{{1}, {2}}), tensor.Scalar(0.0))
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	if _, err := layer.Forward(matrix(t, [][]float64{{1, 2, 3}})); !errors.Is(err, tensor.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := layer.Forward(tensor.Vector([]float64{1, 2})); !errors.Is(err, tensor.ErrRank) {
		t.Errorf("expected ErrRank, got %v", err)
	}
}

// TestLinear_StateDict tests state dict round trips and validation.
func TestLinear_StateDict(t *testing.T) {
	layer, err := nn.NewLinear(matrix(t, [][]float64{{2}}), tensor.Scalar(1.0))
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	sd := layer.StateDict()
	if len(sd) != 2 || sd["weight"] == nil || sd["bias"] == nil {
		t.Fatalf("StateDict() = %v, want weight and bias", sd)
	}

	err = layer.LoadStateDict(map[string]*tensor.Tensor[float64]{
		"weight": matrix(t, [][]float64{{-1}}),
		"bias":   tensor.Scalar(4.0),
	})
	if err != nil {
		t.Fatalf("LoadStateDict failed: %v", err)
	}
	y, err := layer.Forward(matrix(t, [][]float64{{1}, {2}}))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if !y.Equal(matrix(t, [][]float64{{3}, {2}})) {
		t.Errorf("Forward after load = %s", y)
	}

	err = layer.LoadStateDict(map[string]*tensor.Tensor[float64]{"weight": matrix(t, [][]float64{{1}})})
	if !errors.Is(err, nn.ErrMissingTensor) {
		t.Errorf("expected ErrMissingTensor, got %v", err)
	}

	err = layer.LoadStateDict(map[string]*tensor.Tensor[float64]{
		"weight": nil,
		"bias":   tensor.Scalar(0.0),
	})
	if !errors.Is(err, nn.ErrMissingTensor) {
		t.Errorf("nil weight: expected ErrMissingTensor, got %v", err)
	}

	err = layer.LoadStateDict(map[string]*tensor.Tensor[float64]{
		"weight": matrix(t, [][]float64{{1, 2}}),
		"bias":   tensor.Scalar(0.0),
	})
	if !errors.Is(err, nn.ErrParameterShape) {
		t.Errorf("expected ErrParameterShape, got %v", err)
	}

	// A failed load leaves the parameters untouched.
	if w, _ := layer.Weight().Tensor().At(0, 0); w != -1 {
		t.Errorf("weight after failed load = %v, want -1", w)
	}
}

// TestMSE tests the mean squared error.
func TestMSE(t *testing.T) {
	pred := matrix(t, [][]float64{{3}, {5}, {7}, {9}})
	target := matrix(t, [][]float64{{3}, {4}, {7}, {11}})

	loss, err := nn.MSE(pred, target)
	if err != nil {
		t.Fatalf("MSE failed: %v", err)
	}
	// (0 + 1 + 0 + 4) / 4
	if !floatEqual(loss, 1.25, 1e-12) {
		t.Errorf("MSE = %v, want 1.25", loss)
	}

	loss, err = nn.MSE(pred, pred)
	if err != nil || loss != 0 {
		t.Errorf("MSE(x, x) = %v, %v, want 0", loss, err)
	}

	intLoss, err := nn.MSE(tensor.Vector([]int{1, 2}), tensor.Vector([]int{2, 2}))
	if err != nil || !floatEqual(intLoss, 0.5, 1e-12) {
		t.Errorf("integer MSE = %v, %v, want 0.5", intLoss, err)
	}
}

// TestMSE_Errors tests shape and emptiness validation.
func TestMSE_Errors(t *testing.T) {
	_, err := nn.MSE(tensor.Vector([]float64{1, 2}), tensor.Vector([]float64{1}))
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	// A scalar target is not broadcast.
	_, err = nn.MSE(tensor.Vector([]float64{1, 2}), tensor.Scalar(1.0))
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	_, err = nn.MSE(tensor.Vector([]float64{}), tensor.Vector([]float64{}))
	if !errors.Is(err, nn.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

// TestModuleInterface tests that Linear satisfies Module.
func TestModuleInterface(t *testing.T) {
	layer, err := nn.NewLinear(matrix(t, [][]float32{{1}}), nil)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}
	var _ nn.Module[float32] = layer
}
