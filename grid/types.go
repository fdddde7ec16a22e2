// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/hexpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidSize indicates a non-positive board side length.
	ErrInvalidSize = errors.New("grid: board size must be positive")
	// ErrObstacleOutOfBounds indicates an obstacle coordinate outside the board.
	ErrObstacleOutOfBounds = errors.New("grid: obstacle coordinate out of bounds")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Coord is an integer board position. Two coordinates are equal iff both
// components are equal; Coord is comparable and is used directly as a map key,
// which gives a canonical, collision-free keying of (X, Y).
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y" for diagnostics and vertex IDs.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// CoordSet is a set of coordinates: membership test, insert, remove.
// The zero value is not usable; construct via NewCoordSet.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set containing the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s.Add(c)
	}

	return s
}

// Add inserts c into the set. Idempotent.
func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

// Has reports whether c is a member of the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Remove deletes c from the set. No-op if absent.
func (s CoordSet) Remove(c Coord) { delete(s, c) }

// Len returns the number of members.
func (s CoordSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}

	return out
}

// Topology selects the board adjacency rule.
type Topology int

const (
	// Hex uses 6-directional hexagonal adjacency in offset coordinates;
	// the neighbor offsets depend on the parity of the cell's row (Y).
	Hex Topology = iota
	// Rect4 uses 4-directional rectangular adjacency: N, E, S, W.
	Rect4
	// Rect8 uses 8-directional rectangular adjacency: N, NE, E, SE, S, SW, W, NW.
	Rect8
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Hex:
		return "Hex"
	case Rect4:
		return "Rect4"
	case Rect8:
		return "Rect8"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Neighbor offsets per topology. Hex offsets are split by row parity;
// the order of each table fixes the deterministic neighbor visit order.
var (
	hexOddOffsets  = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}}
	hexEvenOffsets = [][2]int{{-1, -1}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
	rect4Offsets   = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	rect8Offsets   = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Options contains tunable parameters for board construction.
type Options struct {
	// Topology chooses hex or rectangular adjacency.
	Topology Topology
	// Obstacles lists impassable coordinates.
	Obstacles []Coord

	// internal error recorded during option parsing
	err error
}

// Option configures board construction via functional arguments.
// An invalid Option (e.g. unknown topology) is recorded internally
// and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// hexagonal topology, no obstacles.
func DefaultOptions() Options {
	return Options{
		Topology:  Hex,
		Obstacles: nil,
		err:       nil,
	}
}

// WithTopology selects the adjacency rule for the board.
// Unknown values cause ErrOptionViolation at New.
func WithTopology(t Topology) Option {
	return func(o *Options) {
		switch t {
		case Hex, Rect4, Rect8:
			o.Topology = t
		default:
			o.err = fmt.Errorf("%w: unknown topology %d", ErrOptionViolation, int(t))
		}
	}
}

// WithObstacles marks the given coordinates impassable.
// May be supplied multiple times; coordinates accumulate.
func WithObstacles(coords ...Coord) Option {
	return func(o *Options) {
		o.Obstacles = append(o.Obstacles, coords...)
	}
}
