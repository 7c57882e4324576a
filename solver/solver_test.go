package solver

import (
	"errors"
	"testing"

	"github.com/gridlock-xyz/go-gridlock/board"
)

const fixture = `
	+-------+-------+-------+
	| 1 6 _ | 9 _ _ | _ _ 5 |
	| 2 _ _ | _ 4 5 | 6 _ 9 |
	| _ 9 _ | _ 3 _ | 7 _ 2 |
	+-------+-------+-------+
	| 6 _ _ | _ _ 7 | _ 9 3 |
	| 9 _ _ | _ 1 _ | _ _ 7 |
	| 4 7 _ | 3 _ 9 | _ _ 8 |
	+-------+-------+-------+
	| 7 _ 2 | _ 8 _ | 9 5 6 |
	| _ _ 6 | 2 9 _ | _ _ 4 |
	| _ _ 9 | _ _ _ | _ _ 1 |
	+-------+-------+-------+`

// unsolvable is valid as given, but cell (0,8) has no candidate:
// digits 1-8 occupy its row and 9 its column.
const unsolvable = `
	1 2 3 4 5 6 7 8 _
	_ _ _ _ _ _ _ _ 9
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _
	_ _ _ _ _ _ _ _ _`

// maxSteps bounds the stepped searches in this file. Brute-force
// backtracking on the fixture finishes well under this.
const maxSteps = 20_000_000

func parse(t *testing.T, text string) *board.Board {
	t.Helper()
	b, n := board.Parse(text)
	if n != board.Cells {
		t.Fatalf("puzzle consumed %d cells, want %d", n, board.Cells)
	}
	return b
}

// run steps the solver until a terminal status or the step bound.
func run(t *testing.T, s *Solver, b *board.Board) Status {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		status, err := s.Step(b)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if status != Searching {
			return status
		}
	}
	t.Fatalf("no terminal status within %d steps", maxSteps)
	return Searching
}

func TestSolve(t *testing.T) {
	b := parse(t, fixture)
	if !Solve(b) {
		t.Fatal("Solve failed on the fixture puzzle")
	}
	if !b.IsSolved() {
		t.Fatal("Solve reported success but the board is not solved")
	}
}

func TestSolveKeepsGivens(t *testing.T) {
	b := parse(t, fixture)
	givens := b.Cells()
	if !Solve(b) {
		t.Fatal("Solve failed on the fixture puzzle")
	}
	solved := b.Cells()
	for i, d := range givens {
		if d != board.Empty && solved[i] != d {
			t.Errorf("cell %d: given %d overwritten with %d", i, d, solved[i])
		}
	}
}

func TestSolveIdempotentOnSolvedBoard(t *testing.T) {
	b := parse(t, fixture)
	if !Solve(b) {
		t.Fatal("Solve failed on the fixture puzzle")
	}
	before := b.Cells()
	if !Solve(b) {
		t.Fatal("Solve failed on an already-solved board")
	}
	if b.Cells() != before {
		t.Error("Solve mutated an already-solved board")
	}
}

func TestSolveRestoresBoardOnFailure(t *testing.T) {
	b := parse(t, unsolvable)
	before := b.Cells()
	if Solve(b) {
		t.Fatal("Solve succeeded on an unsolvable puzzle")
	}
	if b.Cells() != before {
		t.Error("failed Solve did not restore the board")
	}
}

func TestStepMatchesSolve(t *testing.T) {
	oneShot := parse(t, fixture)
	if !Solve(oneShot) {
		t.Fatal("Solve failed on the fixture puzzle")
	}

	stepped := parse(t, fixture)
	s := New()
	if status := run(t, s, stepped); status != Solved {
		t.Fatalf("stepped search ended in %v, want %v", status, Solved)
	}

	// Both searches try digits ascending at the first unfilled cell,
	// so they must land on the same solution.
	if stepped.Cells() != oneShot.Cells() {
		t.Errorf("stepped and one-shot solutions differ:\n%s\nvs\n%s", stepped, oneShot)
	}
}

func TestStepOnSolvedBoard(t *testing.T) {
	b := parse(t, fixture)
	if !Solve(b) {
		t.Fatal("Solve failed on the fixture puzzle")
	}
	before := b.Cells()

	s := New()
	status, err := s.Step(b)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != Solved {
		t.Errorf("Step on a solved board = %v, want %v", status, Solved)
	}
	if b.Cells() != before {
		t.Error("Step mutated a solved board")
	}
	if s.Depth() != 0 {
		t.Errorf("Depth = %d after terminal step, want 0", s.Depth())
	}
}

func TestStepFirstMoves(t *testing.T) {
	b := parse(t, fixture)
	s := New()

	// First unfilled cell of the fixture is index 2; digit 1 goes in.
	status, err := s.Step(b)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != Searching {
		t.Fatalf("status = %v, want %v", status, Searching)
	}
	if m := s.LastMove(); m.Kind != MoveAdvance || m.Index != 2 || m.Digit != 1 {
		t.Errorf("first move = %+v, want advance at 2 with digit 1", m)
	}
	if d, _ := b.GetIndex(2); d != 1 {
		t.Errorf("cell 2 = %d after first step, want 1", d)
	}

	// 1 duplicates the 1 at cell 0, so the next step bumps it.
	if _, err := s.Step(b); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m := s.LastMove(); m.Kind != MoveRetry || m.Index != 2 || m.Digit != 2 {
		t.Errorf("second move = %+v, want retry at 2 with digit 2", m)
	}
	if s.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", s.Depth())
	}
}

func TestStepUnsolvable(t *testing.T) {
	b := parse(t, unsolvable)
	initial := b.Cells()

	s := New()
	if status := run(t, s, b); status != Unsolvable {
		t.Fatalf("ended in %v, want %v", status, Unsolvable)
	}

	// Candidates 1..9 at cell 8, one retraction, one final pop: the
	// whole exhaustion takes 11 steps.
	if s.Steps() != 11 {
		t.Errorf("Steps = %d, want 11", s.Steps())
	}
	if b.Cells() != initial {
		t.Error("unsolvable search did not restore the board")
	}

	// Unsolvable is terminal: further steps do not restart the search.
	status, err := s.Step(b)
	if err != nil {
		t.Fatalf("Step after Unsolvable: %v", err)
	}
	if status != Unsolvable {
		t.Errorf("Step after Unsolvable = %v, want %v", status, Unsolvable)
	}
	if b.Cells() != initial {
		t.Error("stepping past Unsolvable mutated the board")
	}
}

func TestStepInvalidStartingBoard(t *testing.T) {
	b := parse(t, fixture)
	b.SetIndex(2, 6) // duplicates the 6 in row 0

	s := New()
	_, err := s.Step(b)
	if !errors.Is(err, ErrBoardInvalid) {
		t.Fatalf("Step on invalid board: err = %v, want ErrBoardInvalid", err)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Searching:  "searching",
		Solved:     "solved",
		Unsolvable: "unsolvable",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
