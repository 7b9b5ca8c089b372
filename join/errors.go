package join

import "errors"

var (
	// ErrUnsupportedOperand indicates two colliding values with no combination rule.
	ErrUnsupportedOperand = errors.New("join: unsupported operand types")

	// ErrNoInput indicates that no mapping was supplied where one is required.
	ErrNoInput = errors.New("join: no input mappings")

	// ErrUnmatchedKey indicates a colliding key with no rule under OnUnmatchedError.
	ErrUnmatchedKey = errors.New("join: no merge rule for key")

	// ErrNonIntegerKey indicates a column-index mapping with a non-integer key.
	ErrNonIntegerKey = errors.New("join: column key is not an integer")
)
