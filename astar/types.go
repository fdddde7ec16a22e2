// Package astar provides tunable options and error definitions
// for A* search over a grid.Grid.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexpath/grid"
)

// Sentinel errors for search entry validation. All are raised synchronously
// before any search state is built; none can occur mid-search.
var (
	// ErrNilGrid is returned if a nil board pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCoordOutOfBounds is returned when start or end lies outside the board.
	ErrCoordOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrBlockedEndpoint is returned when start or end is an obstacle cell.
	ErrBlockedEndpoint = errors.New("astar: endpoint is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Result holds the outcome of one search invocation.
//
// "No path" is a normal outcome, not an error: Found is false and Path is nil
// when the frontier is exhausted (disconnected board) or the expansion budget
// runs out.
type Result struct {
	// Path is the cell sequence from start to end, inclusive of both.
	// nil when Found is false. A start==end search yields a single-element path.
	Path []grid.Coord

	// Found reports whether a path was reached.
	Found bool

	// Expanded counts finalized (closed) nodes — a measure of search effort.
	Expanded int
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// MaxExpansions, if > 0, bounds the number of node expansions.
	// A search that exhausts the budget reports "no path found".
	// A value of 0 explicitly disables the budget.
	MaxExpansions int

	// OnExpand is called when a node is finalized, immediately before its
	// neighbors are examined. Receives the cell and its g (exact cost from
	// start) and f (g plus heuristic) values. Useful for visualizers and
	// search instrumentation; must not mutate the board.
	OnExpand func(c grid.Coord, gCost, fCost int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// no expansion budget, no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnExpand:      func(grid.Coord, int, int) {},
		err:           nil,
	}
}

// WithMaxExpansions bounds the search to at most n node expansions.
//
//	n > 0:  limit to n expansions; exhaustion reports "no path found"
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// WithOnExpand registers a callback to run on every node expansion.
func WithOnExpand(fn func(c grid.Coord, gCost, fCost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
