// Package bucket provides a bucket-queue shortest-path engine for uniform
// unit-cost rectangular boards, trading generality for O(1) frontier pops.
//
// What
//
//   - Searcher precomputes passable-cell adjacency lists once per board and
//     answers any number of sequential start/end queries.
//   - The frontier is a small rotating ring of buckets indexed by f − base,
//     where base tracks the minimum live f estimate. Pops drain bucket 0;
//     when it empties, the base rises by 1 and the ring rotates.
//   - Visitation is generation-stamped: a new Search bumps a counter and all
//     per-cell state from older searches becomes implicitly unvisited, with
//     no clearing pass between calls.
//   - Search returns the path from the end cell back to (excluding) the
//     start; Result.Forward reorients it to start→end inclusive.
//
// Why
//
//   - Avoids both the heap of classic A* and the linear min-scan: with unit
//     step cost and a consistent Manhattan-family heuristic, a successor's f
//     exceeds the popped f by at most 2, so a 3-bucket ring suffices.
//   - Repeated queries on one static board (turn-based AI, influence maps)
//     amortize the adjacency precomputation and allocate nothing per call.
//
// Applicability
//
//	Valid only when every edge costs exactly 1 and the heuristic is
//	consistent. Rect4 (Manhattan) and Rect8 (Chebyshev) qualify; the hex
//	heuristic max(dx,dy)+min(dx,dy)/2 is not consistent, so
//	NewSearcher rejects Hex boards with ErrUnsupportedTopology — route those
//	to astar.FindPath.
//
// Concurrency
//
//	The precomputed adjacency is read-only and the underlying grid may be
//	shared by any number of Searchers. One Searcher, however, owns mutable
//	generation-stamped state: never run concurrent Searches on it.
//
// Complexity (N = board cells, d = 4 or 8)
//
//   - NewSearcher: O(N·d) time and memory.
//   - Search:      O(N·d) time, O(1) per pop and push.
//
// Usage
//
//	s, err := bucket.NewSearcher(g) // g must be Rect4 or Rect8
//	if err != nil { ... }
//	res, err := s.Search(start, end)
//	if err != nil {
//	    // one of: ErrCoordOutOfBounds, ErrBlockedEndpoint
//	}
//	if res.Found {
//	    forward := res.Forward(start) // start→end inclusive
//	}
//
// Errors
//
//   - ErrNilGrid             if the board pointer is nil.
//   - ErrUnsupportedTopology if the board is hexagonal.
//   - ErrCoordOutOfBounds    if start or end lies outside the board.
//   - ErrBlockedEndpoint     if start or end is an obstacle cell.
package bucket
