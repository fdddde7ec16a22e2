// Package planner defines the Pathfinder contract, strategy selection
// options, and sentinel errors for github.com/katalvlaran/hexpath.
package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/grid"
)

// Sentinel errors for planner construction.
var (
	// ErrNilGrid is returned if a nil board pointer is passed to New.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// Pathfinder is the single search contract both engines implement:
// given validated endpoints, return the shortest unit-cost path from start
// to end inclusive, or Found=false when the board disconnects them.
// Implementations are interchangeable; they agree on path length for every
// scenario both support, though equal-length paths may differ on ties.
type Pathfinder interface {
	FindPath(start, end grid.Coord) (astar.Result, error)
}

// Strategy selects the search engine backing a Pathfinder.
type Strategy int

const (
	// Auto picks per board shape: Bucket for rectangular topologies
	// (uniform unit cost, consistent Manhattan-family heuristic),
	// Scan for hexagonal boards.
	Auto Strategy = iota
	// Scan forces the general min-scan A* engine (astar package).
	Scan
	// Bucket forces the bucket-queue engine (bucket package);
	// construction fails on hexagonal boards.
	Bucket
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "Auto"
	case Scan:
		return "Scan"
	case Bucket:
		return "Bucket"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures planner construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters for planner construction.
type Options struct {
	// Strategy selects the backing engine. Default Auto.
	Strategy Strategy

	// SearchOptions are forwarded to the astar engine on every FindPath
	// call when the Scan strategy backs the planner (budget, hooks).
	// Ignored by the Bucket engine.
	SearchOptions []astar.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// Auto strategy, no forwarded search options.
func DefaultOptions() Options {
	return Options{
		Strategy:      Auto,
		SearchOptions: nil,
		err:           nil,
	}
}

// WithStrategy selects the backing engine.
// Unknown values cause ErrOptionViolation at New.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Auto, Scan, Bucket:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithSearchOptions forwards astar options (expansion budget, hooks) to
// every FindPath call of a Scan-backed planner.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.SearchOptions = append(o.SearchOptions, opts...)
	}
}
