// Package proof builds zero-knowledge proofs that a Sudoku puzzle has
// been solved: the solver proves knowledge of a full valid assignment
// consistent with the public givens, without revealing the solution.
package proof

import (
	"github.com/consensys/gnark/frontend"

	"github.com/gridlock-xyz/go-gridlock/board"
)

// SolutionCircuit constrains a private 81-digit assignment to be a
// valid Sudoku solution of the public puzzle. Givens use 0 for empty
// cells, mirroring the board's Empty sentinel.
type SolutionCircuit struct {
	// Public inputs: the puzzle as given.
	Givens [board.Cells]frontend.Variable `gnark:",public"`

	// Private input: the claimed solution.
	Solution [board.Cells]frontend.Variable
}

// Define encodes the Sudoku rules:
//   - every solution cell is a digit in [1, 9]
//   - every given is preserved (Givens[i] != 0 implies equality)
//   - no digit repeats within a row, column, or box
func (c *SolutionCircuit) Define(api frontend.API) error {
	for i := 0; i < board.Cells; i++ {
		// Digit range: product (cell - 1)(cell - 2)...(cell - 9) == 0.
		acc := frontend.Variable(1)
		for d := 1; d <= 9; d++ {
			acc = api.Mul(acc, api.Sub(c.Solution[i], d))
		}
		api.AssertIsEqual(acc, 0)

		// Given preservation: Givens[i] * (Solution[i] - Givens[i]) == 0,
		// trivially satisfied when the given is 0 (empty).
		api.AssertIsEqual(api.Mul(c.Givens[i], api.Sub(c.Solution[i], c.Givens[i])), 0)
	}

	for g := 0; g < board.Size; g++ {
		assertAllDifferent(api, c.Solution, rowIndices(g))
		assertAllDifferent(api, c.Solution, columnIndices(g))
		assertAllDifferent(api, c.Solution, boxIndices(g))
	}
	return nil
}

// assertAllDifferent constrains the cells at the given indices to be
// pairwise distinct.
func assertAllDifferent(api frontend.API, cells [board.Cells]frontend.Variable, idx [board.Size]int) {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			api.AssertIsDifferent(cells[idx[i]], cells[idx[j]])
		}
	}
}

func rowIndices(r int) [board.Size]int {
	var out [board.Size]int
	for c := 0; c < board.Size; c++ {
		out[c] = r*board.Size + c
	}
	return out
}

func columnIndices(c int) [board.Size]int {
	var out [board.Size]int
	for r := 0; r < board.Size; r++ {
		out[r] = r*board.Size + c
	}
	return out
}

func boxIndices(x int) [board.Size]int {
	origin := (x/board.BoxSize)*board.Size*board.BoxSize + (x%board.BoxSize)*board.BoxSize
	offsets := [board.Size]int{0, 1, 2, 9, 10, 11, 18, 19, 20}
	var out [board.Size]int
	for i, off := range offsets {
		out[i] = origin + off
	}
	return out
}
