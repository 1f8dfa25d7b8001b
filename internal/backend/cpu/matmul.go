package cpu

import "fmt"

// MatMul computes C = A @ B for row-major A (m×k) and B (k×n) into c (m×n).
//
// The product is the naive triple loop: rows of C in order, columns in order,
// and the inner index ascending, accumulating from zero. Results are therefore
// reproducible bit for bit for floating-point inputs.
func MatMul[T Number](c, a, b []T, m, k, n int) {
	if m < 0 || k < 0 || n < 0 {
		panic(fmt.Sprintf("matmul: negative dimension in [%d,%d] @ [%d,%d]", m, k, k, n))
	}
	checkLen("matmul: lhs", m*k, len(a))
	checkLen("matmul: rhs", k*n, len(b))
	checkLen("matmul: out", m*n, len(c))

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
