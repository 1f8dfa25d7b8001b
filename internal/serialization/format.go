package serialization

import (
	"fmt"

	"github.com/nlpodyssey/safetensors"
	"github.com/nlpodyssey/safetensors/dtype"

	"github.com/born-ml/minitensor/internal/tensor"
)

const metadataKey = "__metadata__"

// toSafeTensors converts a tensor to its SafeTensors representation.
// Plain int is stored as I64.
func toSafeTensors[T tensor.Numeric](name string, t *tensor.Tensor[T]) (safetensors.Tensor, error) {
	var (
		dt   dtype.DType
		data any
	)
	switch tensor.DTypeOf[T]() {
	case tensor.Float32:
		dt, data = dtype.F32, convert[float32](t.Data())
	case tensor.Float64:
		dt, data = dtype.F64, convert[float64](t.Data())
	case tensor.Int32:
		dt, data = dtype.I32, convert[int32](t.Data())
	default:
		dt, data = dtype.I64, convert[int64](t.Data())
	}

	st, err := safetensors.NewTensor(name, dt, t.Shape(), data)
	if err != nil {
		return safetensors.Tensor{}, fmt.Errorf("tensor %s: %w", name, err)
	}
	return st, nil
}

// supported reports whether values of dt can be converted to a Numeric type.
func supported(dt dtype.DType) bool {
	switch dt {
	case dtype.U8, dtype.I8, dtype.U16, dtype.I16,
		dtype.U32, dtype.I32, dtype.F32, dtype.U64, dtype.I64, dtype.F64:
		return true
	default:
		return false
	}
}

// fromSafeTensors converts the typed data of a decoded tensor to T.
func fromSafeTensors[T tensor.Numeric](st safetensors.Tensor) ([]T, error) {
	switch data := st.Data().(type) {
	case []uint8:
		return convert[T](data), nil
	case []int8:
		return convert[T](data), nil
	case []uint16:
		return convert[T](data), nil
	case []int16:
		return convert[T](data), nil
	case []uint32:
		return convert[T](data), nil
	case []int32:
		return convert[T](data), nil
	case []float32:
		return convert[T](data), nil
	case []uint64:
		return convert[T](data), nil
	case []int64:
		return convert[T](data), nil
	case []float64:
		return convert[T](data), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDType, st.DType())
	}
}

type element interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 |
		~int | ~float32 | ~float64
}

func convert[D, S element](src []S) []D {
	out := make([]D, len(src))
	for i, v := range src {
		out[i] = D(v)
	}
	return out
}
