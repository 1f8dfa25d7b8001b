package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxRank is the highest rank a Tensor can have.
const MaxRank = 2

// Shape represents the dimensions of a tensor.
// An empty shape denotes a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank at most MaxRank, no negative
// dimensions and an element count that fits in an int. Zero-length
// dimensions are allowed.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return fmt.Errorf("%w: shape %v has rank %d", ErrRankTooHigh, s, len(s))
	}
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		if dim > 0 && n > math.MaxInt/dim {
			return fmt.Errorf("%w: shape %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a tuple: (), (3,), (2, 2).
func (s Shape) String() string {
	switch len(s) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(s[0]) + ",)"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
