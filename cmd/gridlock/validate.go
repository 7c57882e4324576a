package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gridlock-xyz/go-gridlock/board"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock validate <puzzle.txt>

Parse a puzzle and check it against the rules. Reports how many cells
the text filled, how many are given, and whether any row, column, or
box holds a duplicate.
`)
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
	b, consumed := board.Parse(text)

	fmt.Printf("Cells parsed: %d of %d\n", consumed, board.Cells)
	fmt.Printf("Givens:       %d\n", b.FilledCount())

	if !b.IsValid() {
		return fmt.Errorf("puzzle violates the rules")
	}
	if b.IsSolved() {
		fmt.Println("Status:       solved")
	} else {
		fmt.Println("Status:       valid")
	}
	return nil
}
