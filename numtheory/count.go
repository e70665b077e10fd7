package numtheory

import "fmt"

// MaxCountN is the largest n for which n! fits in an int64.
const MaxCountN = 20

const (
	methodFactorial    = "Factorial"
	methodPermutations = "Permutations"
	methodCombinations = "Combinations"
)

// Factorial returns n! by iterative product. n must be in [0, MaxCountN].
func Factorial(n int) (int64, error) {
	if n < 0 || n > MaxCountN {
		return 0, fmt.Errorf("%s: n=%d: %w", methodFactorial, n, ErrOutOfRange)
	}
	f := int64(1)
	for k := int64(2); k <= int64(n); k++ {
		f *= k
	}

	return f, nil
}

// Permutations returns nPr = n!/(n-r)!. r outside [0,n] counts 0 ways.
func Permutations(n, r int) (int64, error) {
	if n < 0 || n > MaxCountN {
		return 0, fmt.Errorf("%s: n=%d: %w", methodPermutations, n, ErrOutOfRange)
	}
	if r < 0 || r > n {
		return 0, nil
	}
	p := int64(1)
	for k := n - r + 1; k <= n; k++ {
		p *= int64(k)
	}

	return p, nil
}

// Combinations returns nCr = n!/(r!(n-r)!). r outside [0,n] counts 0 ways.
func Combinations(n, r int) (int64, error) {
	if n < 0 || n > MaxCountN {
		return 0, fmt.Errorf("%s: n=%d: %w", methodCombinations, n, ErrOutOfRange)
	}
	if r < 0 || r > n {
		return 0, nil
	}
	nf, _ := Factorial(n)
	rf, _ := Factorial(r)
	df, _ := Factorial(n - r)

	return nf / (rf * df), nil
}
