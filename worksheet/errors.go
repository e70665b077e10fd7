package worksheet

import "errors"

// ErrUnknownTopic indicates a topic id that is not registered.
var ErrUnknownTopic = errors.New("worksheet: unknown topic")

// ErrCheckFailed indicates a problem record whose advertised relation does
// not hold. Generators never emit such records; Check exists so tests and
// renderers can prove it.
var ErrCheckFailed = errors.New("worksheet: problem check failed")
