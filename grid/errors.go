package grid

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrNotAdjacent indicates a wall query between cells that are not
	// grid-adjacent (Manhattan distance must be exactly 1).
	ErrNotAdjacent = errors.New("grid: cells must be adjacent")
)
