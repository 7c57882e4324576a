package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/eventlog"
	"github.com/gridlock-xyz/go-gridlock/session"
)

func trace(args []string) error {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	output := fs.String("output", "", "Output file for the trace (required)")
	format := fs.String("format", "", "Trace format: jsonl or csv (default: from file extension)")
	maxSteps := fs.Int("max", 0, "Step budget (0 uses the default)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gridlock trace <puzzle.txt> [options]

Solve a puzzle and write the complete move trace (every advance,
retry, and retraction) to a file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # JSONL trace, format inferred from the extension
  gridlock trace puzzle.txt --output trace.jsonl

  # CSV trace
  gridlock trace puzzle.txt --output trace.csv
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	form := *format
	if form == "" {
		switch {
		case strings.HasSuffix(*output, ".csv"):
			form = "csv"
		default:
			form = "jsonl"
		}
	}
	if form != "jsonl" && form != "csv" {
		return fmt.Errorf("unknown format %q (want jsonl or csv)", form)
	}

	text, err := loadPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}
	b, consumed := board.Parse(text)
	if consumed < board.Cells {
		fmt.Fprintf(os.Stderr, "Warning: filled %d of %d cells\n", consumed, board.Cells)
	}

	var tr eventlog.Trace
	cfg := session.RunConfig{
		MaxSteps: *maxSteps,
		OnMove:   func(e eventlog.Event) { tr = append(tr, e) },
	}
	res, err := session.Run(context.Background(), nil, b, text, cfg)
	if err != nil {
		return err
	}

	if form == "csv" {
		err = eventlog.WriteCSV(*output, tr)
	} else {
		err = eventlog.WriteJSONL(*output, tr)
	}
	if err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	sum := tr.Summarize()
	fmt.Fprintf(os.Stderr, "%s after %d steps\n", res.Status, res.Steps)
	fmt.Fprintf(os.Stderr, "  Advances:    %d\n", sum.Advances)
	fmt.Fprintf(os.Stderr, "  Retries:     %d\n", sum.Retries)
	fmt.Fprintf(os.Stderr, "  Retractions: %d\n", sum.Retractions)
	fmt.Fprintf(os.Stderr, "  Output:      %s\n", *output)
	return nil
}
