package numbers

import "testing"

// TestIsPrime checks the predicate against known primes and composites.
func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, value := range primes {
		if !IsPrime(value) {
			t.Errorf("IsPrime(%d) = false, want true", value)
		}
	}

	composites := []int{-7, 0, 1, 4, 9, 15, 100, 7917}
	for _, value := range composites {
		if IsPrime(value) {
			t.Errorf("IsPrime(%d) = true, want false", value)
		}
	}
}

// TestIsPerfect verifies the first three perfect numbers and their
// divisors, plus a few non-perfect values.
func TestIsPerfect(t *testing.T) {
	number, ok := IsPerfect(6)
	if !ok {
		t.Fatal("IsPerfect(6) = false, want true")
	}
	wantDivisors := []int{1, 2, 3}
	if len(number.Divisors) != len(wantDivisors) {
		t.Fatalf("divisors of 6: got %v, want %v", number.Divisors, wantDivisors)
	}
	for i, d := range wantDivisors {
		if number.Divisors[i] != d {
			t.Errorf("divisors of 6: got %v, want %v", number.Divisors, wantDivisors)
			break
		}
	}

	for _, value := range []int{28, 496} {
		if _, ok := IsPerfect(value); !ok {
			t.Errorf("IsPerfect(%d) = false, want true", value)
		}
	}
	for _, value := range []int{-6, 0, 1, 2, 12, 100, 497} {
		if _, ok := IsPerfect(value); ok {
			t.Errorf("IsPerfect(%d) = true, want false", value)
		}
	}
}

// TestFibonacci verifies both implementations agree and match the demo's
// sequence definition (fib(2) = 2).
func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 5},
		{5, 8},
		{10, 89},
	}

	for _, tt := range tests {
		if got := Fibonacci(tt.n); got != tt.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := FibonacciRecursive(tt.n); got != tt.want {
			t.Errorf("FibonacciRecursive(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
