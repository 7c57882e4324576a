// Package solver implements brute-force backtracking search over a
// Sudoku board, exposed as a steppable state machine.
//
// The search is reified as data: an explicit stack of trial-cell
// indices plus a backtracking flag stand in for the native call stack
// of the recursive formulation, so a driver can interleave individual
// search moves with other work (one move per Step call) without
// coroutines or suspension primitives. Solve is the one-shot recursive
// variant for callers that do not need to pause.
package solver

import (
	"errors"

	"github.com/gridlock-xyz/go-gridlock/board"
)

// Error types for the solver package.
var (
	// ErrBoardInvalid is returned by Step when the board was already
	// invalid before the search placed anything, a precondition
	// violation by the caller. The solver itself never leaves the board
	// invalid without the offending cell on top of the attempt stack.
	ErrBoardInvalid = errors.New("solver: board was invalid before search began")
)

// Status is the outcome of a single search step.
type Status int

const (
	// Searching means the step made one assignment or retraction and
	// the search is still in progress.
	Searching Status = iota
	// Solved means the board is completely and validly filled.
	Solved
	// Unsolvable means every candidate at every trial cell has been
	// exhausted: no assignment to the empty cells can satisfy the
	// constraints. The board is back in its initial state.
	Unsolvable
)

func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// MoveKind classifies the single board mutation a step performed.
type MoveKind int

const (
	// MoveNone: no mutation (terminal step).
	MoveNone MoveKind = iota
	// MoveAdvance: digit 1 placed in a fresh cell.
	MoveAdvance
	// MoveRetry: the digit in the top trial cell bumped to its successor.
	MoveRetry
	// MoveRetract: an exhausted trial cell cleared.
	MoveRetract
)

func (k MoveKind) String() string {
	switch k {
	case MoveAdvance:
		return "advance"
	case MoveRetry:
		return "retry"
	case MoveRetract:
		return "retract"
	default:
		return "none"
	}
}

// Move describes the mutation made by the most recent step.
type Move struct {
	Kind  MoveKind
	Index int         // linear cell index, valid unless Kind is MoveNone
	Digit board.Digit // digit now in the cell, Empty for MoveRetract
}

// Solver holds resumable search state between Step calls.
//
// The attempt stack records, oldest first, the linear indices of every
// cell currently holding a digit placed by the search rather than by
// the original puzzle. The backtracking flag marks that the search is
// unwinding exhausted cells instead of advancing. A Solver is created
// fresh per solving session and must not outlive its board.
type Solver struct {
	attempts     []int
	backtracking bool
	exhausted    bool
	steps        int
	last         Move
}

// New creates a solver with an empty attempt stack.
func New() *Solver {
	return &Solver{}
}

// Steps returns how many times Step has been called.
func (s *Solver) Steps() int {
	return s.steps
}

// Depth returns the current attempt-stack depth: the number of cells
// holding a search-placed digit.
func (s *Solver) Depth() int {
	return len(s.attempts)
}

// LastMove returns the mutation made by the most recent Step call.
func (s *Solver) LastMove() Move {
	return s.last
}

// Step advances the search by exactly one assignment or retraction.
//
// The branch taken is determined jointly by the board's validity, the
// backtracking flag, and whether an unfilled cell remains:
//
//  1. Board invalid: the previous trial digit conflicts. Bump it to
//     its successor, or clear the cell and start backtracking when it
//     was already 9.
//  2. Backtracking: pop the next older trial cell and apply the same
//     bump-or-clear; a successful bump resumes forward search.
//  3. Otherwise place digit 1 in the first unfilled cell, or report
//     Solved when none remains.
//
// Unsolvable is reported when backtracking runs out of trial cells to
// retract; at that point the board has been restored to its initial
// state. ErrBoardInvalid is returned only when the caller's starting
// board was invalid before the search placed anything.
func (s *Solver) Step(b *board.Board) (Status, error) {
	s.steps++
	s.last = Move{Kind: MoveNone}

	if s.exhausted {
		// Terminal: stepping past Unsolvable never restarts the search.
		return Unsolvable, nil
	}

	if !b.IsValid() {
		if len(s.attempts) == 0 {
			// Mid-search the offending cell is always on top of the
			// stack, so an empty stack here means the board arrived
			// invalid.
			return Searching, ErrBoardInvalid
		}
		s.bumpOrRetract(b, s.pop())
		return Searching, nil
	}

	if s.backtracking {
		if len(s.attempts) == 0 {
			// Every trial cell has been retracted: the puzzle admits
			// no solution.
			s.backtracking = false
			s.exhausted = true
			return Unsolvable, nil
		}
		if s.bumpOrRetract(b, s.pop()) {
			s.backtracking = false
		}
		return Searching, nil
	}

	index, ok := b.FirstUnfilled()
	if !ok {
		// Only valid entries can be reached here, so a full board is a
		// solved board.
		return Solved, nil
	}

	b.SetIndex(index, 1)
	s.attempts = append(s.attempts, index)
	s.last = Move{Kind: MoveAdvance, Index: index, Digit: 1}
	return Searching, nil
}

// pop removes and returns the top attempt-stack entry.
// Callers check for emptiness first.
func (s *Solver) pop() int {
	last := s.attempts[len(s.attempts)-1]
	s.attempts = s.attempts[:len(s.attempts)-1]
	return last
}

// bumpOrRetract tries the next candidate digit at a popped trial cell.
// If the current digit has a successor the cell is bumped and pushed
// back, and true is returned. If the digit is already 9 the cell is
// cleared, the backtracking flag set, and false returned; the next
// older trial cell is the caller's problem on a subsequent step.
func (s *Solver) bumpOrRetract(b *board.Board, index int) bool {
	d, _ := b.GetIndex(index)
	if next, ok := d.Successor(); ok {
		b.SetIndex(index, next)
		s.attempts = append(s.attempts, index)
		s.last = Move{Kind: MoveRetry, Index: index, Digit: next}
		return true
	}
	b.SetIndex(index, board.Empty)
	s.backtracking = true
	s.last = Move{Kind: MoveRetract, Index: index, Digit: board.Empty}
	return false
}

// Solve solves the board in one blocking call using recursive
// depth-first search, digits tried in ascending order at the first
// unfilled cell. On success the board is fully assigned and true is
// returned; on failure the board is restored to its original state and
// false is returned.
//
// The search is unbounded (worst case 9^empty branches) with no
// progress reporting; callers that need responsiveness drive a Solver
// with Step instead.
func Solve(b *board.Board) bool {
	index, ok := b.FirstUnfilled()
	if !ok {
		return b.IsValid()
	}

	for d := board.Digit(1); d <= 9; d++ {
		b.SetIndex(index, d)
		if !b.IsValid() {
			continue
		}
		if Solve(b) {
			return true
		}
	}

	b.SetIndex(index, board.Empty)
	return false
}
