// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/minitensor/internal/backend/cpu"
)

// Name identifies the backend.
const Name = internalcpu.Name

// Number is the element constraint of the kernels.
type Number = internalcpu.Number

// Zip sets dst[i] = fn(a[i], b[i]).
func Zip[T Number](dst, a, b []T, fn func(x, y T) T) {
	internalcpu.Zip(dst, a, b, fn)
}

// Map sets dst[i] = fn(src[i]).
func Map[T Number](dst, src []T, fn func(x T) T) {
	internalcpu.Map(dst, src, fn)
}

// MatMul computes c = a @ b for row-major a [m, k] and b [k, n].
//
// Example:
//
//	c := make([]float64, m*n)
//	cpu.MatMul(c, a, b, m, k, n)
func MatMul[T Number](c, a, b []T, m, k, n int) {
	internalcpu.MatMul(c, a, b, m, k, n)
}

// Sum returns the sum of all elements, 0 for an empty slice.
func Sum[T Number](src []T) T {
	return internalcpu.Sum(src)
}
