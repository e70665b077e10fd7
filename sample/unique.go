package sample

// Unique is a per-batch seen-set. Generators key it with the rendered
// question (or a tuple of operands) to avoid printing the same problem twice.
// The zero value is ready to use.
type Unique[K comparable] struct {
	seen map[K]struct{}
}

// Seen reports whether k was added before.
func (u *Unique[K]) Seen(k K) bool {
	_, ok := u.seen[k]
	return ok
}

// Add records k.
func (u *Unique[K]) Add(k K) {
	if u.seen == nil {
		u.seen = make(map[K]struct{})
	}
	u.seen[k] = struct{}{}
}

// Len returns the number of distinct keys recorded.
func (u *Unique[K]) Len() int { return len(u.seen) }
