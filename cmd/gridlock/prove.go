package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/proof"
	"github.com/gridlock-xyz/go-gridlock/solver"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	solutionFile := fs.String("solution", "", "Claimed solution file (default: solve the puzzle first)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock prove <puzzle.txt> [options]

Produce and verify a Groth16 proof that the puzzle has a solution,
without the proof revealing it. With --solution, the provided board is
proved instead of searching for one.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	text, err := loadPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}
	puzzle, consumed := board.Parse(text)
	if consumed < board.Cells {
		fmt.Fprintf(os.Stderr, "Warning: filled %d of %d cells\n", consumed, board.Cells)
	}

	var solution *board.Board
	if *solutionFile != "" {
		st, err := loadPuzzle(*solutionFile)
		if err != nil {
			return err
		}
		solution, _ = board.Parse(st)
	} else {
		solution = puzzle.Clone()
		if !solver.Solve(solution) {
			return fmt.Errorf("puzzle is unsolvable, nothing to prove")
		}
	}

	fmt.Fprintln(os.Stderr, "Compiling circuit...")
	start := time.Now()
	cc, err := proof.Compile()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  %d constraints (%.1fs)\n", cc.Constraints, time.Since(start).Seconds())

	start = time.Now()
	prf, public, err := cc.Prove(puzzle, solution)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Proof generated (%.1fs)\n", time.Since(start).Seconds())

	if err := cc.Verify(prf, public); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Proof verified")
	return nil
}
