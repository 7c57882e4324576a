package board

import "strings"

// Parse builds a board from a textual puzzle description.
//
// The text is scanned left to right. Each character '1'..'9' fills the
// next cell with that digit; each blank marker '_' fills the next cell
// with Empty. Every other character (whitespace, newlines, decorative
// grid characters such as '+', '|', and '-') is skipped and does not
// consume a cell. Markers beyond the 81st are ignored.
//
// Parse never fails. If the text contains fewer than 81 markers the
// trailing cells are left empty; the returned count tells the caller
// how many cells were consumed, so truncation is detectable even
// though it is not an error here.
func Parse(text string) (*Board, int) {
	b := New()
	i := 0
	for _, c := range text {
		if i >= Cells {
			break
		}
		switch {
		case c == '_':
			b.cells[i] = Empty
			i++
		case c >= '1' && c <= '9':
			b.cells[i] = Digit(c - '0')
			i++
		}
	}
	return b, i
}

// String renders the board as a decorated grid:
//
//	+-------+-------+-------+
//	| 1 6 _ | 9 _ _ | _ _ 5 |
//	...
//
// Empty cells render as '_'. The output parses back to the same board;
// the frame characters are all skipped by Parse.
func (b *Board) String() string {
	var sb strings.Builder
	rule := "+-------+-------+-------+\n"
	for r := 0; r < Size; r++ {
		if r%BoxSize == 0 {
			sb.WriteString(rule)
		}
		for c := 0; c < Size; c++ {
			if c%BoxSize == 0 {
				sb.WriteString("| ")
			}
			d := b.cells[r*Size+c]
			sb.WriteString(d.String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
