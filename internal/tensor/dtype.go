// Package tensor provides the core tensor type and its arithmetic.
//
// A Tensor holds numeric data of rank 0 (scalar), 1 (vector) or 2 (matrix)
// together with a shape inferred once at construction. Tensors are immutable:
// every operation returns a freshly allocated result and never aliases its
// operands.
package tensor

import "reflect"

// Numeric is a constraint for supported tensor element types.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Int
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64, Int:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// DTypeOf returns the DataType of T, resolved through its underlying type
// so that named types such as `type Meters float64` are supported.
func DTypeOf[T Numeric]() DataType {
	var dummy T
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	default:
		return Int
	}
}
