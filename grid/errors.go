package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
