package numbers

// IsPrime reports whether value is a prime number.
//
// Uses trial division by odd candidates up to the integer square root,
// which is plenty for the ranges the demos search.
func IsPrime(value int) bool {
	if value < 2 {
		return false
	}
	if value == 2 {
		return true
	}
	if value%2 == 0 {
		return false
	}
	for divisor := 3; divisor*divisor <= value; divisor += 2 {
		if value%divisor == 0 {
			return false
		}
	}
	return true
}
