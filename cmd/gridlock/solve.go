package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/cache"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	stats := fs.Bool("stats", false, "Print cache statistics after solving")
	quiet := fs.Bool("quiet", false, "Suppress board output, report outcomes only")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock solve <puzzle.txt> [<puzzle.txt> ...] [options]

Solve one or more puzzles in one shot. Duplicate puzzles across the
argument list are solved once and served from cache.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Solve a single puzzle
  gridlock solve puzzle.txt

  # Solve a batch and report cache effectiveness
  gridlock solve a.txt b.txt a.txt --stats
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	sc := cache.NewSolveCache(0)
	unsolved := 0

	for _, file := range fs.Args() {
		text, err := loadPuzzle(file)
		if err != nil {
			return err
		}
		b, consumed := board.Parse(text)
		if consumed < board.Cells {
			fmt.Fprintf(os.Stderr, "Warning: %s filled %d of %d cells\n", file, consumed, board.Cells)
		}
		if !b.IsValid() {
			return fmt.Errorf("%s: puzzle violates the rules", file)
		}

		start := time.Now()
		ok := sc.Solve(b)
		elapsed := time.Since(start)

		if !ok {
			unsolved++
			fmt.Fprintf(os.Stderr, "%s: unsolvable (%.3fs)\n", file, elapsed.Seconds())
			continue
		}
		if !*quiet {
			fmt.Println(b.String())
		}
		fmt.Fprintf(os.Stderr, "%s: solved in %.3fs\n", file, elapsed.Seconds())
	}

	if *stats {
		s := sc.Stats()
		fmt.Fprintf(os.Stderr, "Cache: %d hits, %d misses, %d entries\n", s.Hits, s.Misses, s.Size)
	}
	if unsolved > 0 {
		return fmt.Errorf("%d puzzle(s) unsolvable", unsolved)
	}
	return nil
}
