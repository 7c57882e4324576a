package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/eventlog"
	"github.com/gridlock-xyz/go-gridlock/session"
)

func step(args []string) error {
	fs := flag.NewFlagSet("step", flag.ExitOnError)
	delay := fs.Duration("delay", 0, "Pause between solver steps (e.g. 10ms)")
	maxSteps := fs.Int("max", 0, "Step budget (0 uses the default)")
	every := fs.Int("every", 0, "Print the board every N steps (0 disables)")
	dbPath := fs.String("db", "", "Record the session to this SQLite database")
	record := fs.Bool("record", false, "Persist every move, not just the outcome (requires --db)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock step <puzzle.txt> [options]

Solve a puzzle one move at a time. Each step places, bumps, or retracts
a single digit; --delay and --every make the search watchable.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Watch the search at 100 steps/second
  gridlock step puzzle.txt --delay 10ms --every 25

  # Record the run to SQLite with the full move trace
  gridlock step puzzle.txt --db sessions.db --record
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}
	if *record && *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--record requires --db")
	}

	text, err := loadPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}
	b, consumed := board.Parse(text)
	if consumed < board.Cells {
		fmt.Fprintf(os.Stderr, "Warning: filled %d of %d cells\n", consumed, board.Cells)
	}

	var store session.Store
	if *dbPath != "" {
		s, err := session.NewSQLiteStore(*dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()
		store = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := session.RunConfig{
		MaxSteps:    *maxSteps,
		Delay:       *delay,
		RecordMoves: *record,
	}
	if *every > 0 {
		n := *every
		cfg.OnMove = func(e eventlog.Event) {
			if e.Step%n == 0 {
				fmt.Printf("step %d  depth %d  %s\n%s\n", e.Step, e.Depth, e.Kind, b.String())
			}
		}
	}

	start := time.Now()
	res, err := session.Run(ctx, store, b, text, cfg)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println(b.String())
	fmt.Fprintf(os.Stderr, "%s after %d steps (%.3fs)\n", res.Status, res.Steps, elapsed.Seconds())
	if store != nil {
		fmt.Fprintf(os.Stderr, "Session: %s\n", res.SessionID)
	}
	return nil
}
