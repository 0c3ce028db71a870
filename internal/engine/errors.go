package engine

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from the
	// requested parameters (size below MinSize, malformed grid, bad spawn odds).
	// The engine state is left untouched.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIllegalDirection is returned for a move value outside Up/Down/Left/Right.
	ErrIllegalDirection = errors.New("illegal direction")
)
