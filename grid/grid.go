package grid

import "fmt"

// Grid is a square board of side length Size with an obstacle set and a
// fixed adjacency rule. It is immutable once built and safe for concurrent
// read-only use by any number of simultaneous searches.
type Grid struct {
	size      int
	topology  Topology
	obstacles CoordSet
}

// New constructs a Grid of the given side length from functional options.
// Cells are indexed 0..size-1 on each axis.
// Returns ErrInvalidSize if size <= 0,
// ErrObstacleOutOfBounds if any obstacle lies outside the board,
// ErrOptionViolation if an invalid Option was supplied.
// Obstacles are copied; later mutation of the caller's slice has no effect.
// Complexity: O(k) time and memory for k obstacles.
func New(size int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := &Grid{
		size:      size,
		topology:  o.Topology,
		obstacles: make(CoordSet, len(o.Obstacles)),
	}
	for _, c := range o.Obstacles {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v on %d×%d board", ErrObstacleOutOfBounds, c, size, size)
		}
		g.obstacles.Add(c)
	}

	return g, nil
}

// Size returns the board side length.
func (g *Grid) Size() int { return g.size }

// Topology returns the board adjacency rule.
func (g *Grid) Topology() Topology { return g.topology }

// InBounds reports whether c lies within the board boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Obstacle reports whether c is an obstacle coordinate.
// Complexity: O(1).
func (g *Grid) Obstacle(c Coord) bool {
	return g.obstacles.Has(c)
}

// Passable reports whether c is in bounds and not an obstacle —
// i.e. a cell a path may step on.
// Complexity: O(1).
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && !g.obstacles.Has(c)
}

// offsets returns the neighbor offset table for the cell at c.
// On Hex boards the table depends on the parity of c.Y; on rectangular
// boards it is the same for every cell.
func (g *Grid) offsets(c Coord) [][2]int {
	switch g.topology {
	case Hex:
		if c.Y%2 != 0 {
			return hexOddOffsets
		}

		return hexEvenOffsets
	case Rect8:
		return rect8Offsets
	default:
		return rect4Offsets
	}
}

// Neighbors returns the passable neighbors of c in deterministic offset order.
// A neighbor is valid iff it is in bounds and not an obstacle.
// Complexity: O(d), d = 4, 6 or 8.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(c, nil)
}

// AppendNeighbors appends the passable neighbors of c to buf and returns
// the extended slice. Use to avoid per-call allocations in hot loops.
// Complexity: O(d).
func (g *Grid) AppendNeighbors(c Coord, buf []Coord) []Coord {
	for _, d := range g.offsets(c) {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Passable(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// Adjacent reports whether b is reachable from a in exactly one step
// under the board topology, ignoring passability.
// Complexity: O(d).
func (g *Grid) Adjacent(a, b Coord) bool {
	for _, d := range g.offsets(a) {
		if a.X+d[0] == b.X && a.Y+d[1] == b.Y {
			return true
		}
	}

	return false
}

// Heuristic estimates the step count between a and b under the board
// topology. Rect4 and Rect8 estimates are exact lower bounds on the true
// unit-cost distance; Hex uses the standard offset-coordinate bound.
//
//	Hex:   max(dx,dy) + min(dx,dy)/2   (offset-coordinate hex bound)
//	Rect4: dx + dy                     (Manhattan)
//	Rect8: max(dx,dy)                  (Chebyshev)
//
// Complexity: O(1).
func (g *Grid) Heuristic(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	switch g.topology {
	case Hex:
		if dx > dy {
			return dx + dy/2
		}

		return dy + dx/2
	case Rect8:
		if dx > dy {
			return dx
		}

		return dy
	default:
		return dx + dy
	}
}

// Index maps c to its row-major cell index: Y*Size + X.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major cell index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.size, Y: idx / g.size}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
