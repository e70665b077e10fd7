package sample_test

// scripted replays a fixed list of values and counts how many were used.
type scripted struct {
	vals []float64
	n    int
}

func (s *scripted) Next() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}
