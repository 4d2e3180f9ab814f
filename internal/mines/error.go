package mines

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell position out of bounds")
	ErrInvalidState = errors.New("operation not allowed in current game state")
	ErrInvalidSize  = errors.New("invalid grid size")
)
