package ggmap

import "errors"

// Common errors shared across ggmap packages.
var (
	// ErrConfiguration is the root of all configuration faults. Errors
	// returned for invalid renderer setup wrap it, so callers can test
	// with errors.Is(err, ggmap.ErrConfiguration).
	ErrConfiguration = errors.New("ggmap: invalid configuration")

	// ErrNilCanvas is returned when a nil Canvas is passed to Draw.
	ErrNilCanvas = errors.New("ggmap: nil canvas")
)
