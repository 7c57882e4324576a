package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/eventlog"
	"github.com/gridlock-xyz/go-gridlock/session"
)

func sessions(args []string) error {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database to read (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock sessions --db <sessions.db>

List recorded solving sessions, oldest first.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--db required")
	}

	store, err := session.NewSQLiteStore(*dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	all, err := store.Sessions(context.Background())
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-10s  %s\n", "ID", "STARTED", "OUTCOME", "STEPS")
	for _, s := range all {
		outcome := s.Outcome
		if outcome == "" {
			outcome = "running"
		}
		fmt.Printf("%-36s  %-20s  %-10s  %d\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), outcome, s.Steps)
	}
	return nil
}

func replay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database to read (required)")
	delay := fs.Duration("delay", 0, "Pause between replayed moves")
	every := fs.Int("every", 0, "Print the board every N moves (0 disables)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock replay <session-id> --db <sessions.db> [options]

Replay a recorded session's moves against its puzzle. Only sessions
recorded with --record carry the full move trace; others replay just
the terminal event.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("session ID required")
	}
	if *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--db required")
	}

	store, err := session.NewSQLiteStore(*dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	id := fs.Arg(0)
	sess, err := store.Session(ctx, id)
	if err != nil {
		return err
	}
	events, err := store.Events(ctx, id)
	if err != nil {
		return err
	}

	b, _ := board.Parse(sess.Puzzle)
	for _, e := range events {
		applyEvent(b, e)
		if *every > 0 && e.Step%*every == 0 {
			fmt.Printf("step %d  depth %d  %s\n%s\n", e.Step, e.Depth, e.Kind, b.String())
		}
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}

	fmt.Println(b.String())
	sum := events.Summarize()
	fmt.Fprintf(os.Stderr, "Session %s: %s, %d steps recorded\n", sess.ID, sess.Outcome, len(events))
	fmt.Fprintf(os.Stderr, "  Advances: %d  Retries: %d  Retractions: %d\n",
		sum.Advances, sum.Retries, sum.Retractions)
	return nil
}

// applyEvent mutates the board the way the recorded move did. Terminal
// events carry no cell and change nothing.
func applyEvent(b *board.Board, e eventlog.Event) {
	if e.Cell < 0 {
		return
	}
	b.SetIndex(e.Cell, board.Digit(e.Digit))
}
