// Package eventlog records the moves of a solving session as typed
// events and reads and writes them in JSONL and CSV form. A trace
// captures the full search path, every advance, retry, and retraction,
// so a run can be inspected or replayed after the fact.
package eventlog

import (
	"time"

	"github.com/gridlock-xyz/go-gridlock/solver"
)

// Event kinds. The first three mirror solver.MoveKind; the terminal
// kinds record how the session ended.
const (
	KindAdvance    = "advance"
	KindRetry      = "retry"
	KindRetract    = "retract"
	KindSolved     = "solved"
	KindUnsolvable = "unsolvable"
)

// Event is a single solver move within a session.
type Event struct {
	Session   string    `json:"session"`
	Step      int       `json:"step"`
	Kind      string    `json:"kind"`
	Cell      int       `json:"cell"`  // linear cell index; -1 for terminal events
	Digit     int       `json:"digit"` // digit now in the cell; 0 after a retraction
	Depth     int       `json:"depth"` // attempt-stack depth after the move
	Timestamp time.Time `json:"timestamp"`
}

// FromMove converts a solver move into an event.
func FromMove(session string, step int, m solver.Move, depth int) Event {
	return Event{
		Session:   session,
		Step:      step,
		Kind:      m.Kind.String(),
		Cell:      m.Index,
		Digit:     int(m.Digit),
		Depth:     depth,
		Timestamp: time.Now().UTC(),
	}
}

// Terminal builds the closing event for a finished session.
func Terminal(session string, step int, status solver.Status, depth int) Event {
	kind := KindUnsolvable
	if status == solver.Solved {
		kind = KindSolved
	}
	return Event{
		Session:   session,
		Step:      step,
		Kind:      kind,
		Cell:      -1,
		Depth:     depth,
		Timestamp: time.Now().UTC(),
	}
}

// Trace is an ordered sequence of events from one session.
type Trace []Event

// Summary holds per-kind counts for a trace.
type Summary struct {
	Advances    int
	Retries     int
	Retractions int
	Final       string // terminal kind, or "" for a truncated trace
}

// Summarize tallies a trace by move kind.
func (tr Trace) Summarize() Summary {
	var s Summary
	for _, e := range tr {
		switch e.Kind {
		case KindAdvance:
			s.Advances++
		case KindRetry:
			s.Retries++
		case KindRetract:
			s.Retractions++
		case KindSolved, KindUnsolvable:
			s.Final = e.Kind
		}
	}
	return s
}
