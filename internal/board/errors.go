package board

import "errors"

var (
	ErrOutOfBounds = errors.New("square out of bounds")
	ErrOccupied    = errors.New("square occupied")
	ErrNoPiece     = errors.New("no such piece")
	ErrBadSnapshot = errors.New("bad snapshot")
)
