// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the pure Go kernels behind tensor operations.
//
// # Overview
//
// The kernels work on flat row-major slices:
//   - Zip: elementwise binary operation
//   - Map: elementwise unary operation
//   - MatMul: naive triple-loop matrix multiplication
//   - Sum: reduction over all elements
//
// Lengths are preconditions. A mismatch is a programming error and panics;
// the tensor package validates shapes before calling in.
//
// # Basic Usage
//
//	import "github.com/born-ml/minitensor/backend/cpu"
//
//	func main() {
//	    a := []float64{1, 2, 3, 4} // 2x2
//	    b := []float64{5, 6, 7, 8} // 2x2
//	    c := make([]float64, 4)
//	    cpu.MatMul(c, a, b, 2, 2, 2) // c = [19 22 43 50]
//	}
package cpu
