// Package planner exposes one Pathfinder contract over the two hexpath
// search engines and picks the right engine per board shape.
//
// What
//
//   - Pathfinder: FindPath(start, end) → astar.Result, the single search
//     contract of the library. Paths always run start→end inclusive.
//   - New(grid, opts...) builds a Pathfinder backed by either:
//   - Scan — the general min-scan A* (astar package), any topology;
//   - Bucket — the bucket-queue engine (bucket package), rectangular
//     topologies only.
//   - Auto (default) routes Hex boards to Scan and Rect4/Rect8 boards to
//     Bucket, matching each engine's validity domain.
//
// Why
//
//   - Callers program against one contract and swap engines by option, not
//     by code change; both engines agree on path length wherever both apply.
//   - The bucket engine's reverse goal→start output is normalized here, so
//     the contract's path order is uniform.
//
// Usage
//
//	pf, err := planner.New(g) // Auto strategy
//	if err != nil { ... }
//	res, err := pf.FindPath(start, end)
//
//	// Force an engine, forward astar options:
//	pf, err = planner.New(
//	    g,
//	    planner.WithStrategy(planner.Scan),
//	    planner.WithSearchOptions(astar.WithMaxExpansions(10_000)),
//	)
//
// Errors
//
//   - ErrNilGrid          if the board pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - bucket.ErrUnsupportedTopology passes through when Bucket is forced
//     on a hexagonal board.
package planner
