// Package session persists solving sessions: the puzzle, every move
// the solver made, and the outcome. Two Store implementations are
// provided, an in-memory store for tests and short-lived runs and a
// SQLite store for durable history, plus Run, the driver loop that
// paces the solver one step at a time and records what it does.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/gridlock-xyz/go-gridlock/eventlog"
)

// Common store errors.
var (
	// ErrSessionNotFound is returned when a session ID is unknown.
	ErrSessionNotFound = errors.New("session: not found")
)

// Session outcomes.
const (
	OutcomeSolved     = "solved"
	OutcomeUnsolvable = "unsolvable"
	OutcomeInvalid    = "invalid" // starting board violated the rules
	OutcomeAborted    = "aborted" // step budget exhausted or canceled
)

// Session is one solving run over one puzzle.
type Session struct {
	ID        string     `json:"id"`
	Puzzle    string     `json:"puzzle"` // textual puzzle as given
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Steps     int        `json:"steps"`
	Outcome   string     `json:"outcome,omitempty"`
	Solution  string     `json:"solution,omitempty"` // rendered board when solved
}

// Store persists sessions and their move events.
type Store interface {
	// CreateSession records a new session. The session's ID must be unique.
	CreateSession(ctx context.Context, s *Session) error

	// EndSession closes a session with its outcome, total step count,
	// and, when solved, the rendered solution.
	EndSession(ctx context.Context, id, outcome string, steps int, solution string) error

	// AppendEvent records one solver move for a session.
	AppendEvent(ctx context.Context, e eventlog.Event) error

	// Session returns a session by ID.
	Session(ctx context.Context, id string) (*Session, error)

	// Sessions returns all sessions, oldest first.
	Sessions(ctx context.Context) ([]*Session, error)

	// Events returns a session's move trace in step order.
	Events(ctx context.Context, id string) (eventlog.Trace, error)

	// Close releases store resources.
	Close() error
}
