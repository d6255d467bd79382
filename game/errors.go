package game

import "errors"

var (
	// ErrInvalidSize is returned when a board is constructed with a non-positive size.
	ErrInvalidSize = errors.New("invalid board size")
	// ErrOutOfBounds is returned by every indexed operation given a row or column outside [0, N).
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidColor is returned when a placement is not White or Black.
	ErrInvalidColor = errors.New("invalid color")
)
