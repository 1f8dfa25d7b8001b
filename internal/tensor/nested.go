package tensor

import (
	"fmt"
	"math"
	"reflect"
)

// FromNested builds a tensor from a nested literal and infers its shape:
//
//	number              → ()
//	empty sequence      → (0,)
//	sequence of numbers → (n,)
//	n sequences of m    → (n, m)
//
// Sequences may be any slice or array type, including []any as produced by
// encoding/json. Numbers of any Go numeric kind are converted to T. Floats
// with a fractional part are rejected when T is an integer type.
func FromNested[T Numeric](data any) (*Tensor[T], error) {
	if v, ok, err := leaf[T](data); err != nil {
		return nil, err
	} else if ok {
		return Scalar(v), nil
	}

	rv, ok := sequence(data)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrInvalidData, data)
	}
	if rv.Len() == 0 {
		return newTensor([]T{}, Shape{0}), nil
	}

	if _, isRow := sequence(rv.Index(0).Interface()); !isRow {
		values, err := leaves[T](rv, 0)
		if err != nil {
			return nil, err
		}
		return newTensor(values, Shape{len(values)}), nil
	}

	rows := rv.Len()
	var (
		cols  int
		data2 []T
	)
	for i := 0; i < rows; i++ {
		row, ok := sequence(rv.Index(i).Interface())
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a sequence", ErrRaggedShape, i)
		}
		if i == 0 {
			cols = row.Len()
			data2 = make([]T, 0, rows*cols)
		}
		if row.Len() != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, row 0 has %d", ErrRaggedShape, i, row.Len(), cols)
		}
		values, err := leaves[T](row, 1)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		data2 = append(data2, values...)
	}
	return newTensor(data2, Shape{rows, cols}), nil
}

// Nested returns a copy of the data in its nested form: T for scalars, []T
// for vectors and [][]T for matrices.
func (t *Tensor[T]) Nested() any {
	switch t.Rank() {
	case 0:
		return t.data[0]
	case 1:
		return t.Data()
	}

	rows, cols := t.shape[0], t.shape[1]
	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
		copy(out[i], t.data[i*cols:(i+1)*cols])
	}
	return out
}

// leaves converts every element of a sequence found at the given depth.
// A nested sequence at depth 1 means the literal is at least rank 3.
func leaves[T Numeric](rv reflect.Value, depth int) ([]T, error) {
	out := make([]T, rv.Len())
	for i := range out {
		elem := rv.Index(i).Interface()
		v, ok, err := leaf[T](elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if ok {
			out[i] = v
			continue
		}
		if _, isSeq := sequence(elem); isSeq {
			if depth > 0 {
				return nil, fmt.Errorf("%w: element %d is nested", ErrRankTooHigh, i)
			}
			return nil, fmt.Errorf("%w: element %d is a sequence, element 0 is not", ErrRaggedShape, i)
		}
		return nil, fmt.Errorf("%w: element %d has type %T", ErrInvalidData, i, elem)
	}
	return out, nil
}

// leaf converts a single numeric value of any Go numeric kind to T.
// It reports false for non-numeric values.
func leaf[T Numeric](v any) (T, bool, error) {
	var zero T
	if x, ok := v.(T); ok {
		return x, true, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(rv.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return T(rv.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if !DTypeOf[T]().IsFloat() && (f != math.Trunc(f) || math.IsInf(f, 0)) {
			return zero, false, fmt.Errorf("%w: %v is not an integer", ErrInvalidData, f)
		}
		return T(f), true, nil
	default:
		return zero, false, nil
	}
}

func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}
