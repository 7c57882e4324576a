package board

import "errors"

// Error types for the board package.
var (
	// ErrDigitRange is returned when an integer outside [1, 9] is
	// converted to a Digit.
	ErrDigitRange = errors.New("board: digit out of range [1,9]")
)
