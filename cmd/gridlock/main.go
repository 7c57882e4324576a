package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "step":
		if err := step(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "trace":
		if err := trace(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sessions":
		if err := sessions(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "replay":
		if err := replay(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("gridlock version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gridlock - steppable Sudoku solver

Usage:
  gridlock <command> [options]

Commands:
  solve      Solve a puzzle in one shot
  step       Solve a puzzle one move at a time, showing progress
  validate   Check a puzzle for rule violations
  trace      Solve a puzzle and write the full move trace
  prove      Solve a puzzle and produce a zero-knowledge solution proof
  sessions   List recorded solving sessions
  replay     Replay a recorded session's moves
  help       Show this help message
  version    Show version information

Examples:
  # One-shot solve
  gridlock solve puzzle.txt

  # Watch the search, one move every 10ms
  gridlock step puzzle.txt --delay 10ms --every 50

  # Record a session to SQLite, then replay it
  gridlock step puzzle.txt --db sessions.db
  gridlock sessions --db sessions.db
  gridlock replay <session-id> --db sessions.db

  # Export the move trace
  gridlock trace puzzle.txt --output trace.jsonl

For command-specific help, run:
  gridlock <command> --help`)
}

func loadPuzzle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read puzzle: %w", err)
	}
	return string(data), nil
}
