// Package astar implements general A* shortest-path search on a grid.Grid,
// with a linear min-scan frontier and deterministic tie-breaking.
//
// A* explores cells in order of increasing f = g + h, where g is the exact
// accumulated step count from the start and h is the board's heuristic
// estimate to the end. With unit step cost and a lower-bound h, the first
// time the end cell is selected its g is the true shortest path length.
package astar

import (
	"fmt"

	"github.com/katalvlaran/hexpath/grid"
)

// node is one visited-or-pending cell of a single search invocation.
// Nodes live in a per-call arena (the open slice plus nodeIndex) and are
// discarded wholesale when FindPath returns; none is shared across calls.
type node struct {
	coord   grid.Coord
	g, h, f int
	parent  *node // nil for the start node
}

// nodeIndex is a coordinate-keyed lookup of open (discovered, not finalized)
// nodes. Coord is comparable, so the map key is canonical and collision-free.
type nodeIndex map[grid.Coord]*node

func (ix nodeIndex) get(c grid.Coord) (*node, bool) {
	n, ok := ix[c]
	return n, ok
}

func (ix nodeIndex) set(n *node)         { ix[n.coord] = n }
func (ix nodeIndex) remove(c grid.Coord) { delete(ix, c) }

// FindPath runs A* on g from start to end, applying any number of
// functional Options.
//
// Validation order at entry, before any search state is built:
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (ErrCoordOutOfBounds) — never clamped.
//  3. start and end must not be obstacles (ErrBlockedEndpoint).
//
// Outcomes:
//   - Found=true with Path from start to end inclusive, of minimal length.
//   - Found=false with nil Path when the board disconnects the endpoints or
//     the MaxExpansions budget runs out. This is not an error.
//
// Determinism: the frontier is kept in insertion order and the min-f scan
// keeps the first-seen minimum (strict <, no displacement on equal f), so
// identical inputs always yield identical paths.
//
// Complexity: O(n²) time for n open nodes worst case (linear scan per
// expansion, no decrease-key structure), O(N) memory for N board cells.
func FindPath(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 2) Validate the board.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Validate endpoints: bounds first, then passability.
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

	// 4) Prepare per-call search state and run the main loop.
	r := &runner{
		grid:   g,
		opts:   o,
		end:    end,
		open:   make([]*node, 0, g.Size()),
		lookup: make(nodeIndex, g.Size()),
		closed: grid.NewCoordSet(),
	}
	r.seed(start)

	return r.process(), nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	grid     *grid.Grid    // the board; read-only within the search
	opts     Options       // configuration (budget, hooks)
	end      grid.Coord    // goal cell
	open     []*node       // frontier, kept in insertion order
	lookup   nodeIndex     // coord → open node
	closed   grid.CoordSet // finalized coordinates
	expanded int           // finalized node count
	buf      []grid.Coord  // neighbor scratch, reused across expansions
}

// seed creates the start node (g=0, h=heuristic, no parent) and inserts it
// into the frontier and the open lookup.
func (r *runner) seed(start grid.Coord) {
	h := r.grid.Heuristic(start, r.end)
	n := &node{coord: start, g: 0, h: h, f: h}
	r.open = append(r.open, n)
	r.lookup.set(n)
}

// process is the core A* loop. It repeatedly selects the minimum-f frontier
// node, finalizes it, and relaxes its neighbors, until the end is selected
// or the frontier empties.
func (r *runner) process() Result {
	for len(r.open) > 0 {
		// 1) Select the minimum-f node by linear scan.
		i := r.selectMin()
		cur := r.open[i]

		// 2) Goal check happens on selection, not on discovery: only then is
		//    cur.g guaranteed minimal.
		if cur.coord == r.end {
			return Result{Path: reconstruct(cur), Found: true, Expanded: r.expanded}
		}

		// 3) Finalize: remove from frontier + lookup, close the coordinate.
		r.open = append(r.open[:i], r.open[i+1:]...)
		r.lookup.remove(cur.coord)
		r.closed.Add(cur.coord)
		r.expanded++
		r.opts.OnExpand(cur.coord, cur.g, cur.f)

		// 4) Enforce the expansion budget; exhaustion is "no path found".
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Found: false, Expanded: r.expanded}
		}

		// 5) Relax all passable neighbors.
		r.relax(cur)
	}

	// Frontier exhausted without reaching the end: the board disconnects
	// the endpoints. A valid, expected outcome — not an error.
	return Result{Found: false, Expanded: r.expanded}
}

// selectMin returns the index of the frontier node with minimal f.
// Ties break toward the earliest-inserted node: the scan uses strict <
// and never displaces the first-seen minimum on equal f.
func (r *runner) selectMin() int {
	best := 0
	for i := 1; i < len(r.open); i++ {
		if r.open[i].f < r.open[best].f {
			best = i
		}
	}

	return best
}

// relax examines each neighbor of cur and either discovers it or improves
// its g in place. Unit step cost: every edge costs exactly 1.
func (r *runner) relax(cur *node) {
	r.buf = r.grid.AppendNeighbors(cur.coord, r.buf[:0])
	for _, nc := range r.buf {
		// Finalized coordinates are never reconsidered.
		if r.closed.Has(nc) {
			continue
		}
		tentative := cur.g + 1

		if n, ok := r.lookup.get(nc); ok {
			// Already discovered: update g, f and parent in place when the
			// new route is strictly cheaper. No reinsertion is needed — the
			// node keeps its frontier slot and the next scan sees the new f.
			if tentative < n.g {
				n.g = tentative
				n.f = tentative + n.h
				n.parent = cur
			}

			continue
		}

		// Undiscovered: create and insert into frontier + lookup.
		h := r.grid.Heuristic(nc, r.end)
		n := &node{coord: nc, g: tentative, h: h, f: tentative + h, parent: cur}
		r.open = append(r.open, n)
		r.lookup.set(n)
	}
}

// reconstruct follows parent links from the goal node back to the start,
// then reverses so the result runs start→end inclusive of both endpoints.
func reconstruct(goal *node) []grid.Coord {
	// Walk once to size the slice exactly.
	length := 0
	for n := goal; n != nil; n = n.parent {
		length++
	}
	path := make([]grid.Coord, length)
	for n, i := goal, length-1; n != nil; n, i = n.parent, i-1 {
		path[i] = n.coord
	}

	return path
}
