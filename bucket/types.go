// Package bucket defines types and sentinel errors for the bucket-queue
// search variant of github.com/katalvlaran/hexpath.
package bucket

import (
	"errors"

	"github.com/katalvlaran/hexpath/grid"
)

// Sentinel errors for searcher construction and search entry validation.
var (
	// ErrNilGrid is returned if a nil board pointer is passed to NewSearcher.
	ErrNilGrid = errors.New("bucket: grid is nil")

	// ErrUnsupportedTopology is returned for boards whose heuristic is not
	// consistent under unit step cost (currently grid.Hex). The bucket ring
	// relies on f never decreasing and growing by a small bounded amount per
	// step, which only Manhattan-family heuristics guarantee.
	ErrUnsupportedTopology = errors.New("bucket: topology not supported, use the astar engine")

	// ErrCoordOutOfBounds is returned when start or end lies outside the board.
	ErrCoordOutOfBounds = errors.New("bucket: coordinate out of bounds")

	// ErrBlockedEndpoint is returned when start or end is an obstacle cell.
	ErrBlockedEndpoint = errors.New("bucket: endpoint is an obstacle")
)

// Result holds the outcome of one Search invocation.
// "No path" is a normal outcome, not an error: Found is false and
// ReversePath is nil when the frontier empties before reaching the end.
type Result struct {
	// ReversePath runs from the end cell back to, but excluding, the start
	// cell. For start==end it is empty (and Found is true).
	ReversePath []grid.Coord

	// Found reports whether the end was reached.
	Found bool

	// Expanded counts settled cells — a measure of search effort.
	Expanded int
}

// Forward returns the path in start→end order inclusive of both endpoints,
// allocating a fresh slice. start must be the coordinate the search ran from.
func (r Result) Forward(start grid.Coord) []grid.Coord {
	if !r.Found {
		return nil
	}
	path := make([]grid.Coord, len(r.ReversePath)+1)
	path[0] = start
	for i, c := range r.ReversePath {
		path[len(path)-1-i] = c
	}

	return path
}
