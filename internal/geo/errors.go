package geo

import "errors"

var (
	// ErrPoleSingularity is returned when the reference latitude is at (or
	// numerically indistinguishable from) a pole, where longitude degrees
	// have no length.
	ErrPoleSingularity = errors.New("reference latitude at pole singularity")

	// ErrInvalidScale is returned for a non-positive or non-finite pixel scale.
	ErrInvalidScale = errors.New("pixel scale must be a positive finite number")

	// ErrCoordinateRange is returned for a latitude outside [-90, 90] or a
	// longitude outside [-180, 180].
	ErrCoordinateRange = errors.New("coordinate out of range")

	// ErrInvalidCoordinate is returned for coordinate text that is not a decimal number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
