package cpu

// Zip computes dst[i] = fn(a[i], b[i]) for every index in order.
// All three slices must have the same length.
func Zip[T Number](dst, a, b []T, fn func(x, y T) T) {
	checkLen("zip", len(dst), len(a), len(b))
	for i := range dst {
		dst[i] = fn(a[i], b[i])
	}
}

// Map computes dst[i] = fn(src[i]) for every index in order.
func Map[T Number](dst, src []T, fn func(x T) T) {
	checkLen("map", len(dst), len(src))
	for i := range dst {
		dst[i] = fn(src[i])
	}
}
