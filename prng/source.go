package prng

// Source is the only capability sampling code needs: the next value of a
// deterministic trajectory, uniformly distributed in [0,1).
type Source interface {
	Next() float64
}
