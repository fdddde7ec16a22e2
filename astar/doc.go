// Package astar provides a production-grade A* search over a grid.Grid,
// returning shortest unit-cost paths with deterministic tie-breaking.
//
// What
//
//   - Searches from a start cell to an end cell on an immutable board.
//   - Returns a Result containing:
//   - Path: cell sequence from start to end, inclusive (nil if not found)
//   - Found: whether the end was reached
//   - Expanded: number of finalized nodes (search effort)
//   - Frontier is a linear min-scan open list; improvement updates g, f and
//     parent in place with no reinsertion and no decrease-key structure.
//   - Supports an expansion budget (WithMaxExpansions) and an OnExpand hook
//     for visualizers and instrumentation.
//
// Why
//
//   - Shortest paths on hex and rectangular boards with obstacles.
//   - Guided by the grid package's per-topology heuristics.
//   - A deterministic engine: replays and tests see identical paths.
//
// Determinism
//
//	The frontier keeps insertion order and the min-f scan keeps the
//	first-seen minimum (strict <), so ties always resolve the same way
//	and repeated calls with identical inputs yield identical output.
//
// "No path" semantics
//
//	An exhausted frontier (disconnected board) or a spent expansion budget
//	reports Found=false with a nil error. Only invalid input — nil grid,
//	out-of-bounds or obstacle endpoints — produces an error, and always
//	before any search state is built.
//
// Complexity (N = board cells, n = open nodes)
//
//   - Time:   O(n) scan per expansion, O(n²) worst case overall
//   - Memory: O(N) for the per-call node arena, open lookup and closed set
//
// Usage
//
//	res, err := astar.FindPath(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 0})
//	if err != nil {
//	    // one of: ErrNilGrid, ErrCoordOutOfBounds, ErrBlockedEndpoint, ErrOptionViolation
//	}
//	if !res.Found {
//	    // disconnected board (or budget spent) — a normal outcome
//	}
//
//	// With functional options:
//	res, err = astar.FindPath(
//	    g, start, end,
//	    astar.WithMaxExpansions(10_000),
//	    astar.WithOnExpand(func(c grid.Coord, gCost, fCost int) { /* draw frontier */ }),
//	)
//
// Options
//
//   - DefaultOptions(): no budget, no-op hook.
//   - WithMaxExpansions(n): bound search effort; exhaustion → Found=false.
//   - WithOnExpand(fn):     hook on every node finalization.
//
// Errors
//
//   - ErrNilGrid          if the board pointer is nil.
//   - ErrCoordOutOfBounds if start or end lies outside the board.
//   - ErrBlockedEndpoint  if start or end is an obstacle cell.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative budget).
package astar
