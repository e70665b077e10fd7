package numtheory

import (
	"fmt"
	"strconv"
	"strings"
)

const methodFactorize = "Factorize"

// IsPrime reports whether n is prime by trial division up to floor(sqrt(n)).
// Values below 2 are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// PrimesUpTo returns the primes in [2,n] in ascending order.
func PrimesUpTo(n int) []int {
	out := []int{}
	for k := 2; k <= n; k++ {
		if IsPrime(k) {
			out = append(out, k)
		}
	}

	return out
}

// Factorize returns the prime factors of n in non-decreasing order; their
// product is exactly n. n<2 has no prime factorization and yields
// ErrNonPositive.
//
// Complexity: O(sqrt(n)).
func Factorize(n int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFactorize, n, ErrNonPositive)
	}

	factors := []int{}
	rest := n
	for d := 2; d*d <= rest; d++ {
		for rest%d == 0 {
			factors = append(factors, d)
			rest /= d
		}
	}
	if rest > 1 {
		factors = append(factors, rest)
	}

	return factors, nil
}

// FormatFactors renders non-decreasing factors with exponents,
// e.g. [2 2 2 5] -> "2^3 × 5".
func FormatFactors(factors []int) string {
	var parts []string
	for i := 0; i < len(factors); {
		j := i
		for j < len(factors) && factors[j] == factors[i] {
			j++
		}
		p := strconv.Itoa(factors[i])
		if j-i > 1 {
			p += "^" + strconv.Itoa(j-i)
		}
		parts = append(parts, p)
		i = j
	}

	return strings.Join(parts, " × ")
}
