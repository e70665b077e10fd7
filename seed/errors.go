package seed

import "errors"

// ErrInvalidToken indicates that a shared seed token is not 1..8 hex digits.
// Callers recover by falling back to Random (see Resolve).
var ErrInvalidToken = errors.New("seed: invalid token")
