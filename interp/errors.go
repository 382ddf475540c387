package interp

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggmap"
)

// Errors returned by the interp package. Configuration faults wrap
// ggmap.ErrConfiguration.
var (
	// ErrEmptyGradient is returned when a ColorRamp is built from no stops.
	ErrEmptyGradient = fmt.Errorf("%w: interp: empty gradient", ggmap.ErrConfiguration)

	// ErrInvalidStop is returned for a color stop outside [0, 1].
	ErrInvalidStop = fmt.Errorf("%w: interp: color stop out of range", ggmap.ErrConfiguration)

	// ErrNotPointGeometry is returned by Generate for non-point feature classes.
	ErrNotPointGeometry = fmt.Errorf("%w: interp: feature class is not point geometry", ggmap.ErrConfiguration)

	// ErrNotGenerated is returned by Draw before a successful Generate.
	ErrNotGenerated = errors.New("interp: renderer not generated")
)
