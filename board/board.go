// Package board models a 9x9 Sudoku grid: a fixed 81-cell array
// addressed by linear index or (row, column) pair, with row, column,
// and 3x3 box extraction and on-demand validity checking.
//
// The board knows nothing about search. It is mutated in place by the
// puzzle parser and by the solver, and is never shared across
// concurrent mutators.
package board

// Grid dimensions. A board has Size rows, Size columns, Size boxes,
// and Cells cells in total.
const (
	Size    = 9
	Cells   = Size * Size
	BoxSize = 3
)

// Board is a 9x9 Sudoku grid. Cells are laid out row-major: the cell
// at (row, col) has linear index row*9 + col. The zero value is an
// empty board and is ready to use.
type Board struct {
	cells [Cells]Digit
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Index converts a (row, col) pair to a linear cell index.
// Panics if row or col is out of range.
func Index(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic("board: cell out of range")
	}
	return row*Size + col
}

// Get returns the digit at (row, col), reporting false for an
// unfilled cell.
//
// Unlike GetIndex, out-of-range coordinates are a programmer error and
// panic. Both coordinates are checked individually: a huge column
// cannot smuggle the computed index back into range.
func (b *Board) Get(row, col int) (Digit, bool) {
	d := b.cells[Index(row, col)]
	return d, d != Empty
}

// GetIndex returns the digit at a linear index, reporting false for an
// unfilled cell.
//
// Unlike Get, an out-of-range index is tolerated and reported as
// empty. Search code computes indices arithmetically and relies on
// this; the asymmetry with Get is deliberate.
func (b *Board) GetIndex(i int) (Digit, bool) {
	if i < 0 || i >= Cells {
		return Empty, false
	}
	d := b.cells[i]
	return d, d != Empty
}

// SetIndex sets the cell at a linear index, or clears it when d is
// Empty.
//
// An out-of-range index or a value outside [0, 9] is a silent no-op,
// not an error signal. This keeps the solver's fast path free of range
// branching at call sites.
func (b *Board) SetIndex(i int, d Digit) {
	if i < 0 || i >= Cells || d > 9 {
		return
	}
	b.cells[i] = d
}

// Row returns the 9 cells of a row, left to right.
// Panics if r >= 9.
func (b *Board) Row(r int) [Size]Digit {
	if r < 0 || r >= Size {
		panic("board: row out of range")
	}
	var out [Size]Digit
	copy(out[:], b.cells[r*Size:(r+1)*Size])
	return out
}

// Column returns the 9 cells of a column, top to bottom.
// Panics if c >= 9.
func (b *Board) Column(c int) [Size]Digit {
	if c < 0 || c >= Size {
		panic("board: column out of range")
	}
	var out [Size]Digit
	for i := 0; i < Size; i++ {
		out[i] = b.cells[i*Size+c]
	}
	return out
}

// boxOrigin converts a box index to the linear index of the box's
// top-left cell. Boxes run left to right, top to bottom: boxes 0,1,2
// start at 0,3,6; boxes 3,4,5 at 18,21,24; boxes 6,7,8 at 36,39,42.
func boxOrigin(x int) int {
	return (x/BoxSize)*Size*BoxSize + (x%BoxSize)*BoxSize
}

// boxOffsets are the cell positions of a box relative to its origin.
var boxOffsets = [Size]int{0, 1, 2, 9, 10, 11, 18, 19, 20}

// Box returns the 9 cells of a 3x3 box in row-major order.
// Panics if x >= 9.
func (b *Board) Box(x int) [Size]Digit {
	if x < 0 || x >= Size {
		panic("board: box out of range")
	}
	origin := boxOrigin(x)
	var out [Size]Digit
	for i, off := range boxOffsets {
		out[i] = b.cells[origin+off]
	}
	return out
}

// FirstUnfilled returns the smallest linear index whose cell is empty,
// reporting false when all 81 cells are filled.
func (b *Board) FirstUnfilled() (int, bool) {
	for i, d := range b.cells {
		if d == Empty {
			return i, true
		}
	}
	return 0, false
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, d := range b.cells {
		if d != Empty {
			n++
		}
	}
	return n
}

// hasDuplicates reports whether any non-empty digit repeats within a
// group of 9 cells.
func hasDuplicates(group [Size]Digit) bool {
	var seen [Size + 1]bool
	for _, d := range group {
		if d == Empty {
			continue
		}
		if seen[d] {
			return true
		}
		seen[d] = true
	}
	return false
}

// IsValid reports whether no row, column, or box contains a repeated
// digit among its non-empty cells. An all-empty board is valid, and so
// is a correctly solved one.
//
// Validity is recomputed from scratch on every call (O(81)); it is not
// maintained incrementally.
func (b *Board) IsValid() bool {
	for i := 0; i < Size; i++ {
		if hasDuplicates(b.Row(i)) || hasDuplicates(b.Column(i)) || hasDuplicates(b.Box(i)) {
			return false
		}
	}
	return true
}

// IsSolved reports whether every cell is filled and the board is valid.
func (b *Board) IsSolved() bool {
	if _, ok := b.FirstUnfilled(); ok {
		return false
	}
	return b.IsValid()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Cells returns a copy of the raw cell array in linear order.
func (b *Board) Cells() [Cells]Digit {
	return b.cells
}
