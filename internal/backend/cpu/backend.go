// Package cpu implements the CPU kernels behind tensor arithmetic.
//
// Kernels operate on flat row-major slices and never allocate their output:
// the caller owns dst and is responsible for sizing it. Length mismatches are
// programming errors and panic, the same way the shape-checked layer above
// would never let them through.
package cpu

import "fmt"

// Name is the backend name reported to callers.
const Name = "CPU"

// Number is the set of element types the kernels accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func checkLen(op string, want int, got ...int) {
	for _, n := range got {
		if n != want {
			panic(fmt.Sprintf("%s: length mismatch: want %d, got %d", op, want, n))
		}
	}
}
