package board

import (
	"fmt"
	"strconv"
)

// Digit is a Sudoku cell value in the range [1, 9].
//
// The zero value is Empty and marks an unfilled cell. Constructing a
// Digit from an arbitrary integer goes through DigitFromInt so that no
// value outside [1, 9] can enter a Board.
type Digit uint8

// Empty marks an unfilled cell.
const Empty Digit = 0

// DigitFromInt converts an integer to a Digit.
// Returns ErrDigitRange if n is outside [1, 9].
func DigitFromInt(n int) (Digit, error) {
	if n < 1 || n > 9 {
		return Empty, fmt.Errorf("%w: %d", ErrDigitRange, n)
	}
	return Digit(n), nil
}

// Successor returns the next digit up (1→2, ..., 8→9).
// There is no digit after 9, so Successor reports false for it.
func (d Digit) Successor() (Digit, bool) {
	if d < 1 || d >= 9 {
		return Empty, false
	}
	return d + 1, true
}

// IsEmpty reports whether d marks an unfilled cell.
func (d Digit) IsEmpty() bool {
	return d == Empty
}

// String renders the digit as its decimal character, or "_" for Empty.
func (d Digit) String() string {
	if d == Empty {
		return "_"
	}
	return strconv.Itoa(int(d))
}
