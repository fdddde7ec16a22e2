// Package grid models a square game board as a graph-ready coordinate space,
// with obstacle sets, hex or rectangular adjacency, and per-topology heuristics.
//
// What:
//
//   - Grid wraps a Size×Size coordinate space with an obstacle CoordSet.
//   - Topology selects adjacency: Hex (6 neighbors, row-parity offsets),
//     Rect4 (orthogonal) or Rect8 (orthogonal + diagonal).
//   - Neighbors/AppendNeighbors enumerate passable adjacent cells in a fixed,
//     deterministic order.
//   - Heuristic returns a step-count estimate matched to the topology,
//     suitable for A*-family searches.
//   - Components and Connected analyze reachability over passable cells.
//
// Why:
//
//   - Game maps: turn-based movement on hex or square boards with walls.
//   - Search engines: one immutable board shared by many concurrent searches.
//   - Level tooling: island detection, reachability validation.
//
// Hex adjacency (offset coordinates, by parity of the cell's row Y):
//
//   - Odd rows:  (0,-1) (1,-1) (1,0) (1,1) (0,1) (-1,0)
//   - Even rows: (-1,-1) (0,-1) (1,0) (0,1) (-1,1) (-1,0)
//
// Heuristics (dx = |ax-bx|, dy = |ay-by|):
//
//   - Hex:   max(dx,dy) + min(dx,dy)/2
//   - Rect4: dx + dy
//   - Rect8: max(dx,dy)
//
// Complexity:
//
//   - New:        O(k) for k obstacles.
//   - Neighbors:  O(d), d = 4, 6 or 8.
//   - Components: O(N·d), N = Size².  Memory: O(N).
//
// Options:
//
//   - WithTopology(t): Hex (default), Rect4 or Rect8.
//   - WithObstacles(coords...): impassable cells; accumulates across calls.
//
// Errors:
//
//   - ErrInvalidSize: size <= 0.
//   - ErrObstacleOutOfBounds: obstacle outside the board.
//   - ErrOptionViolation: invalid Option (e.g. unknown topology).
package grid
