package cache

import (
	"strings"
	"testing"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/solver"
)

const puzzle = `
	| 1 6 _ | 9 _ _ | _ _ 5 |
	| 2 _ _ | _ 4 5 | 6 _ 9 |
	| _ 9 _ | _ 3 _ | 7 _ 2 |
	| 6 _ _ | _ _ 7 | _ 9 3 |
	| 9 _ _ | _ 1 _ | _ _ 7 |
	| 4 7 _ | 3 _ 9 | _ _ 8 |
	| 7 _ 2 | _ 8 _ | 9 5 6 |
	| _ _ 6 | 2 9 _ | _ _ 4 |
	| _ _ 9 | _ _ _ | _ _ 1 |`

func TestBoardKeyDeterministic(t *testing.T) {
	a, _ := board.Parse(puzzle)
	b, _ := board.Parse(puzzle)
	if BoardKey(a) != BoardKey(b) {
		t.Error("equal boards should hash to the same key")
	}

	b.SetIndex(2, 4)
	if BoardKey(a) == BoardKey(b) {
		t.Error("different boards should hash to different keys")
	}
}

func TestSolveCachesOutcome(t *testing.T) {
	c := NewSolveCache(0)

	first, _ := board.Parse(puzzle)
	if !c.Solve(first) {
		t.Fatal("solve failed on the fixture puzzle")
	}
	if s := c.Stats(); s.Misses != 1 || s.Hits != 0 || s.Size != 1 {
		t.Errorf("after first solve: %+v", s)
	}

	// Second request for the same puzzle is a hit and must produce the
	// identical solution without searching.
	second, _ := board.Parse(puzzle)
	if !c.Solve(second) {
		t.Fatal("cached solve failed")
	}
	if s := c.Stats(); s.Hits != 1 {
		t.Errorf("after second solve: %+v", s)
	}
	if first.Cells() != second.Cells() {
		t.Error("cached solution differs from the computed one")
	}
}

func TestSolveCachesUnsolvable(t *testing.T) {
	c := NewSolveCache(0)

	// Cell (0,8) has no candidate: 1-8 in its row, 9 in its column.
	text := "12345678_" + "________9" + strings.Repeat("_", 63)
	b, n := board.Parse(text)
	if n != board.Cells {
		t.Fatalf("bad fixture: %d cells", n)
	}

	if c.Solve(b) {
		t.Fatal("unsolvable puzzle reported solved")
	}
	again := b.Clone()
	if c.Solve(again) {
		t.Fatal("cached unsolvable puzzle reported solved")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("stats = %+v", s)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := NewSolveCache(0)
	b, _ := board.Parse(puzzle)
	if !c.Solve(b) {
		t.Fatal("solve failed")
	}

	puzzleBoard, _ := board.Parse(puzzle)
	res, ok := c.Get(puzzleBoard)
	if !ok || !res.Solvable {
		t.Fatal("expected cached solvable result")
	}

	// Mutating the returned copy must not poison the cache.
	res.Solution.SetIndex(0, 9)
	res2, _ := c.Get(puzzleBoard)
	if res2.Solution.Cells() == res.Solution.Cells() {
		t.Error("cache returned a shared solution board")
	}
}

func TestFIFOEviction(t *testing.T) {
	c := NewSolveCache(2)

	boards := make([]*board.Board, 3)
	for i := range boards {
		b := board.New()
		b.SetIndex(0, board.Digit(i+1))
		boards[i] = b
		c.Put(b, Result{Solvable: true, Solution: b})
	}

	if s := c.Stats(); s.Size != 2 || s.Evictions != 1 {
		t.Errorf("stats = %+v", s)
	}
	if _, ok := c.Get(boards[0]); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.Get(boards[2]); !ok {
		t.Error("newest entry missing")
	}
}

func TestClear(t *testing.T) {
	c := NewSolveCache(0)
	b, _ := board.Parse(puzzle)
	c.Put(b, Result{Solvable: false})
	c.Clear()
	if s := c.Stats(); s.Size != 0 {
		t.Errorf("size = %d after Clear", s.Size)
	}
	if _, ok := c.Get(b); ok {
		t.Error("entry survived Clear")
	}
}

// Cached and uncached paths must agree with the plain solver.
func TestSolveMatchesSolver(t *testing.T) {
	reference, _ := board.Parse(puzzle)
	if !solver.Solve(reference) {
		t.Fatal("solver.Solve failed")
	}

	c := NewSolveCache(0)
	cached, _ := board.Parse(puzzle)
	if !c.Solve(cached) {
		t.Fatal("cache solve failed")
	}
	if cached.Cells() != reference.Cells() {
		t.Error("cache solve and solver.Solve disagree")
	}
}
