package numtheory

// GCD returns the greatest common divisor of |a| and |b| by repeated
// remainder. GCD(0,0) is 0.
//
// Complexity: O(log min(a,b)).
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|, dividing before
// multiplying to stay inside the integer range. LCM with a zero is 0.
func LCM(a, b int) int {
	a, b = abs(a), abs(b)
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
