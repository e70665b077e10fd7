package render

import "errors"

// ErrUnknownFormat indicates a format name not in Formats().
var ErrUnknownFormat = errors.New("render: unknown format")
