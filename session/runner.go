package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/eventlog"
	"github.com/gridlock-xyz/go-gridlock/solver"
)

// DefaultMaxSteps bounds a run when the config doesn't.
const DefaultMaxSteps = 10_000_000

// ErrStepBudget is returned by Run when the search did not reach a
// terminal status within the step budget.
var ErrStepBudget = errors.New("session: step budget exhausted")

// RunConfig controls pacing and recording for a run.
type RunConfig struct {
	// MaxSteps caps the number of solver steps; 0 means DefaultMaxSteps.
	MaxSteps int

	// Delay pauses between steps. This is the once-per-frame cadence of
	// an interactive driver; leave zero to run flat out.
	Delay time.Duration

	// OnMove, when set, observes every event as it happens.
	OnMove func(eventlog.Event)

	// RecordMoves appends every per-move event to the store. Off, only
	// the terminal event is persisted; a deep search can take millions
	// of moves, and most callers only want the outcome.
	RecordMoves bool
}

// Result reports how a run ended.
type Result struct {
	SessionID string
	Status    solver.Status
	Steps     int
}

// Run drives a fresh solver over the board one step at a time,
// recording the session in store (which may be nil for an unrecorded
// run). The board is mutated in place exactly as by solver.Step.
//
// Run returns when the search reaches a terminal status, the context
// is canceled, the step budget runs out, or the starting board proves
// invalid.
func Run(ctx context.Context, store Store, b *board.Board, puzzleText string, cfg RunConfig) (*Result, error) {
	budget := cfg.MaxSteps
	if budget <= 0 {
		budget = DefaultMaxSteps
	}

	id := uuid.New().String()
	if store != nil {
		err := store.CreateSession(ctx, &Session{
			ID:        id,
			Puzzle:    puzzleText,
			StartedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}

	sv := solver.New()
	res := &Result{SessionID: id, Status: solver.Searching}

	for i := 0; i < budget; i++ {
		if err := ctx.Err(); err != nil {
			endSession(store, id, OutcomeAborted, sv.Steps(), "")
			res.Steps = sv.Steps()
			return res, err
		}

		status, err := sv.Step(b)
		res.Steps = sv.Steps()
		if err != nil {
			endSession(store, id, OutcomeInvalid, sv.Steps(), "")
			return res, err
		}

		var e eventlog.Event
		terminal := status != solver.Searching
		if terminal {
			e = eventlog.Terminal(id, sv.Steps(), status, sv.Depth())
		} else {
			e = eventlog.FromMove(id, sv.Steps(), sv.LastMove(), sv.Depth())
		}

		if store != nil && (terminal || cfg.RecordMoves) {
			if err := store.AppendEvent(ctx, e); err != nil {
				return res, fmt.Errorf("append event: %w", err)
			}
		}
		if cfg.OnMove != nil {
			cfg.OnMove(e)
		}

		if terminal {
			res.Status = status
			outcome := OutcomeUnsolvable
			solution := ""
			if status == solver.Solved {
				outcome = OutcomeSolved
				solution = b.String()
			}
			if store != nil {
				if err := store.EndSession(ctx, id, outcome, sv.Steps(), solution); err != nil {
					return res, fmt.Errorf("end session: %w", err)
				}
			}
			return res, nil
		}

		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}

	endSession(store, id, OutcomeAborted, sv.Steps(), "")
	return res, ErrStepBudget
}

// endSession closes a session on an error path, where the original
// error matters more than a store failure.
func endSession(store Store, id, outcome string, steps int, solution string) {
	if store == nil {
		return
	}
	// Detached context: the run's context may already be canceled.
	_ = store.EndSession(context.Background(), id, outcome, steps, solution)
}
