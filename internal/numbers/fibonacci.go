package numbers

// The demos use the sequence 0, 1, 2, 3, 5, 8, ... where the second and
// third elements are 1 and 2. Both implementations agree with each other;
// the recursive variant exists purely as a slow baseline for the timing
// demo.

// Fibonacci returns the n-th element of the sequence iteratively.
// Negative indexes return 0.
func Fibonacci(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n <= 2:
		return uint64(n)
	}

	a, b := uint64(1), uint64(2)
	for i := 3; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// FibonacciRecursive returns the n-th element via naive double recursion.
// It is exponential on purpose; do not call it with large n outside of
// timing comparisons.
func FibonacciRecursive(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n <= 2:
		return uint64(n)
	}
	return FibonacciRecursive(n-2) + FibonacciRecursive(n-1)
}
