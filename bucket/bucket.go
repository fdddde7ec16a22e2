// Package bucket implements shortest-path search over uniform unit-cost
// rectangular boards using a rotating ring of cost buckets instead of a
// priority queue or a min-scan.
//
// All frontier nodes whose f = g + h exceeds the current base cost by i sit
// in bucket i. Because every step costs exactly 1 and the heuristic is
// consistent, a popped node's successors land at most bucketSpan-1 buckets
// above the base, so pops come for free: drain bucket 0, then rotate.
package bucket

import (
	"fmt"

	"github.com/katalvlaran/hexpath/grid"
)

// bucketSpan is the width of the bucket ring. A successor's f exceeds the
// popped node's f (== base) by at most 2: the step adds 1 to g and a
// Manhattan-family heuristic changes by at most 1 per step.
const bucketSpan = 3

// none marks an absent parent link.
const none = -1

// Searcher runs repeated shortest-path queries over one immutable board.
//
// The passable-cell adjacency lists are precomputed once at construction and
// never mutated, so the underlying grid (and fresh Searchers over it) may be
// shared freely. Per-cell visitation state is generation-stamped: a new
// Search bumps the generation counter and older stamps are implicitly
// treated as unvisited, with no clearing between calls. Consequently a
// single Searcher must not run concurrent Searches; allocate one Searcher
// per goroutine instead.
type Searcher struct {
	grid *grid.Grid

	// adj[i] lists the row-major indices of passable neighbors of cell i.
	// Impassable cells keep empty lists. Read-only after construction.
	adj [][]int

	// Generation-stamped per-cell search state.
	generation uint64
	seenGen    []uint64 // generation in which gCost/parent were last written
	doneGen    []uint64 // generation in which the cell was settled
	gCost      []int
	parent     []int

	// buckets[i] holds frontier cells with f - base == i.
	buckets [bucketSpan][]int
}

// NewSearcher precomputes the adjacency structure for g and returns a
// Searcher ready for any number of sequential queries.
// Returns ErrNilGrid for a nil board and ErrUnsupportedTopology for
// grid.Hex boards (their heuristic is not consistent; use astar.FindPath).
// Complexity: O(N·d) time and memory, N = Size², d = 4 or 8.
func NewSearcher(g *grid.Grid) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Topology() == grid.Hex {
		return nil, ErrUnsupportedTopology
	}

	n := g.Size() * g.Size()
	s := &Searcher{
		grid:    g,
		adj:     make([][]int, n),
		seenGen: make([]uint64, n),
		doneGen: make([]uint64, n),
		gCost:   make([]int, n),
		parent:  make([]int, n),
	}

	// Build passable-cell neighbor links once; every Search reuses them.
	var buf []grid.Coord
	for i := 0; i < n; i++ {
		c := g.Coordinate(i)
		if !g.Passable(c) {
			continue
		}
		buf = g.AppendNeighbors(c, buf[:0])
		links := make([]int, len(buf))
		for j, nc := range buf {
			links[j] = g.Index(nc)
		}
		s.adj[i] = links
	}

	return s, nil
}

// Search finds a shortest unit-cost path from start to end.
//
// Validation order at entry, before any frontier state is touched:
//  1. start and end must be in bounds (ErrCoordOutOfBounds) — never clamped.
//  2. start and end must not be obstacles (ErrBlockedEndpoint).
//
// Outcomes:
//   - Found=true with ReversePath from end back to (excluding) start,
//     of minimal length; start==end yields an empty ReversePath.
//   - Found=false with nil ReversePath when the board disconnects the
//     endpoints. This is not an error.
//
// Complexity: O(N·d) time — every pop and push is O(1); no per-pop scan.
func (s *Searcher) Search(start, end grid.Coord) (Result, error) {
	// 1) Validate endpoints: bounds first, then passability.
	g := s.grid
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v on %d×%d board", ErrCoordOutOfBounds, start, g.Size(), g.Size())
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v on %d×%d board", ErrCoordOutOfBounds, end, g.Size(), g.Size())
	}
	if g.Obstacle(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
	}
	if g.Obstacle(end) {
		return Result{}, fmt.Errorf("%w: end %v", ErrBlockedEndpoint, end)
	}

	// 2) Open a fresh generation: all older per-cell stamps become stale.
	s.generation++
	gen := s.generation

	// 3) Reset the ring, keeping bucket storage for reuse.
	for i := range s.buckets {
		s.buckets[i] = s.buckets[i][:0]
	}
	pending := 0

	// 4) Seed the start cell: g=0, f=h(start), which defines the ring base.
	startIdx, endIdx := g.Index(start), g.Index(end)
	s.seenGen[startIdx] = gen
	s.gCost[startIdx] = 0
	s.parent[startIdx] = none
	s.buckets[0] = append(s.buckets[0], startIdx)
	pending++

	expanded := 0
	for pending > 0 {
		// 5) Pop from bucket 0; rotate the ring while it is empty.
		//    Rotation is valid because all edge costs are 1: the minimum
		//    achievable f rises by at most 1 per exhausted bucket.
		for len(s.buckets[0]) == 0 {
			s.rotate()
		}
		last := len(s.buckets[0]) - 1
		cur := s.buckets[0][last]
		s.buckets[0] = s.buckets[0][:last]
		pending--

		// 6) Skip stale duplicates from superseded discoveries.
		if s.doneGen[cur] == gen {
			continue
		}
		s.doneGen[cur] = gen
		expanded++

		// 7) Goal reached: with a consistent heuristic its g is minimal.
		if cur == endIdx {
			return Result{ReversePath: s.walk(cur, startIdx), Found: true, Expanded: expanded}, nil
		}

		// 8) Relax neighbors: discover or improve, pushing by f - base.
		curG := s.gCost[cur]
		curH := g.Heuristic(g.Coordinate(cur), end)
		for _, nb := range s.adj[cur] {
			if s.doneGen[nb] == gen {
				continue
			}
			ng := curG + 1
			if s.seenGen[nb] == gen && s.gCost[nb] <= ng {
				continue
			}
			s.seenGen[nb] = gen
			s.gCost[nb] = ng
			s.parent[nb] = cur
			// slot = f(neighbor) - base, where base == f(cur) = curG + curH.
			slot := ng + g.Heuristic(g.Coordinate(nb), end) - curG - curH
			s.buckets[slot] = append(s.buckets[slot], nb)
			pending++
		}
	}

	// Frontier exhausted: the board disconnects the endpoints.
	return Result{Found: false, Expanded: expanded}, nil
}

// rotate advances the ring base by 1: bucket 0 is dropped and an empty
// bucket appears at the top, reusing the dropped bucket's storage.
func (s *Searcher) rotate() {
	empty := s.buckets[0][:0]
	copy(s.buckets[:], s.buckets[1:])
	s.buckets[bucketSpan-1] = empty
}

// walk follows parent links from the goal back to (excluding) the start,
// producing the reverse path the Search contract promises.
func (s *Searcher) walk(goal, start int) []grid.Coord {
	path := make([]grid.Coord, 0, s.gCost[goal])
	for i := goal; i != start; i = s.parent[i] {
		path = append(path, s.grid.Coordinate(i))
	}

	return path
}
