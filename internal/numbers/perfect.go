package numbers

// PerfectNumber describes a perfect number together with its proper
// divisors, so callers can print the defining sum (6 = 1 + 2 + 3).
type PerfectNumber struct {
	Number   int
	Divisors []int
}

// IsPerfect reports whether value equals the sum of its proper positive
// divisors. On success the returned PerfectNumber carries the divisors
// in ascending order.
func IsPerfect(value int) (PerfectNumber, bool) {
	if value < 1 {
		return PerfectNumber{}, false
	}

	var divisors []int
	sum := 0
	for divisor := 1; divisor <= value/2; divisor++ {
		if value%divisor == 0 {
			divisors = append(divisors, divisor)
			sum += divisor
		}
	}
	if sum != value {
		return PerfectNumber{}, false
	}
	return PerfectNumber{Number: value, Divisors: divisors}, true
}
