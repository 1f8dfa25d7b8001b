package cpu

// Sum returns the sum of all elements, accumulated in index order.
// The sum of an empty slice is zero.
func Sum[T Number](src []T) T {
	var total T
	for _, v := range src {
		total += v
	}
	return total
}
