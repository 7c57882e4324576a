// Package cache provides memoization for one-shot solving. Repeated
// requests for the same puzzle (a replayed session, a batch job with
// duplicate inputs) skip the backtracking search entirely.
package cache

import (
	"crypto/sha256"
	"sync"

	"github.com/holiman/uint256"

	"github.com/gridlock-xyz/go-gridlock/board"
	"github.com/gridlock-xyz/go-gridlock/solver"
)

// BoardKey returns a 256-bit digest of the board's cells, usable
// directly as a map key: uint256.Int is a comparable value type.
func BoardKey(b *board.Board) uint256.Int {
	cells := b.Cells()
	buf := make([]byte, len(cells))
	for i, d := range cells {
		buf[i] = byte(d)
	}
	sum := sha256.Sum256(buf)

	var key uint256.Int
	key.SetBytes(sum[:])
	return key
}

// Result is a cached solving outcome. Solution is nil for an
// unsolvable puzzle.
type Result struct {
	Solvable bool
	Solution *board.Board
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// SolveCache caches solving outcomes keyed by puzzle digest.
type SolveCache struct {
	mu        sync.RWMutex
	entries   map[uint256.Int]Result
	order     []uint256.Int // insertion order for FIFO eviction
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewSolveCache creates a cache with the specified maximum size.
// When the cache is full the oldest entry is evicted (FIFO).
// Set maxSize to 0 for an unlimited cache.
func NewSolveCache(maxSize int) *SolveCache {
	return &SolveCache{
		entries: make(map[uint256.Int]Result),
		maxSize: maxSize,
	}
}

// Get retrieves the cached outcome for a puzzle, reporting false on a
// miss. The returned solution is a copy; callers may mutate it.
func (c *SolveCache) Get(b *board.Board) (Result, bool) {
	key := BoardKey(b)

	c.mu.Lock()
	res, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()

	if !ok {
		return Result{}, false
	}
	if res.Solution != nil {
		res.Solution = res.Solution.Clone()
	}
	return res, true
}

// Put stores the outcome for a puzzle. The solution is copied.
func (c *SolveCache) Put(b *board.Board, res Result) {
	key := BoardKey(b)
	if res.Solution != nil {
		res.Solution = res.Solution.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if c.maxSize > 0 && len(c.entries) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
			c.evictions++
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = res
}

// Solve behaves like solver.Solve but consults the cache first and
// stores the outcome afterward. On a hit the board is filled from the
// cached solution without searching.
func (c *SolveCache) Solve(b *board.Board) bool {
	if res, ok := c.Get(b); ok {
		if !res.Solvable {
			return false
		}
		cells := res.Solution.Cells()
		for i, d := range cells {
			b.SetIndex(i, d)
		}
		return true
	}

	puzzle := b.Clone()
	if solver.Solve(b) {
		c.Put(puzzle, Result{Solvable: true, Solution: b})
		return true
	}
	c.Put(puzzle, Result{Solvable: false})
	return false
}

// Stats returns current cache counters.
func (c *SolveCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
	}
}

// Clear drops every entry but keeps the counters.
func (c *SolveCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint256.Int]Result)
	c.order = nil
}
