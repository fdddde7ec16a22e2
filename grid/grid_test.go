package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hexpath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects invalid sizes, out-of-board
// obstacles and malformed options.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		opts []grid.Option
		err  error
	}{
		{"ZeroSize", 0, nil, grid.ErrInvalidSize},
		{"NegativeSize", -3, nil, grid.ErrInvalidSize},
		{"ObstacleOutOfBounds", 3, []grid.Option{grid.WithObstacles(grid.Coord{X: 3, Y: 0})}, grid.ErrObstacleOutOfBounds},
		{"NegativeObstacle", 3, []grid.Option{grid.WithObstacles(grid.Coord{X: 0, Y: -1})}, grid.ErrObstacleOutOfBounds},
		{"UnknownTopology", 3, []grid.Option{grid.WithTopology(grid.Topology(42))}, grid.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.size, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.size, err, tc.err)
			}
		})
	}
}

// TestInBounds checks boundary handling on a 3×3 board.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestObstaclePassable verifies obstacle membership and passability.
func TestObstaclePassable(t *testing.T) {
	wall := grid.Coord{X: 1, Y: 1}
	g, err := grid.New(3, grid.WithObstacles(wall))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if !g.Obstacle(wall) {
		t.Errorf("Obstacle(%v)=false; want true", wall)
	}
	if g.Passable(wall) {
		t.Errorf("Passable(%v)=true; want false", wall)
	}
	free := grid.Coord{X: 0, Y: 0}
	if g.Obstacle(free) || !g.Passable(free) {
		t.Errorf("cell %v should be free and passable", free)
	}
	out := grid.Coord{X: 5, Y: 5}
	if g.Passable(out) {
		t.Errorf("Passable(%v)=true for out-of-bounds cell; want false", out)
	}
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_HexParity verifies the row-parity hex offsets on a 5×5 board.
func TestNeighbors_HexParity(t *testing.T) {
	g, err := grid.New(5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Odd row (Y=1): offsets (0,-1) (1,-1) (1,0) (1,1) (0,1) (-1,0).
	odd := g.Neighbors(grid.Coord{X: 2, Y: 1})
	wantOdd := []grid.Coord{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 1},
	}
	assertCoords(t, "odd-row neighbors", odd, wantOdd)

	// Even row (Y=2): offsets (-1,-1) (0,-1) (1,0) (0,1) (-1,1) (-1,0).
	even := g.Neighbors(grid.Coord{X: 2, Y: 2})
	wantEven := []grid.Coord{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2},
	}
	assertCoords(t, "even-row neighbors", even, wantEven)
}

// TestNeighbors_Rect verifies rectangular adjacency with boundary clipping.
func TestNeighbors_Rect(t *testing.T) {
	corner := grid.Coord{X: 0, Y: 0}

	g4, err := grid.New(3, grid.WithTopology(grid.Rect4))
	if err != nil {
		t.Fatalf("New(Rect4) error: %v", err)
	}
	assertCoords(t, "Rect4 corner", g4.Neighbors(corner),
		[]grid.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}})

	g8, err := grid.New(3, grid.WithTopology(grid.Rect8))
	if err != nil {
		t.Fatalf("New(Rect8) error: %v", err)
	}
	assertCoords(t, "Rect8 corner", g8.Neighbors(corner),
		[]grid.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
}

// TestNeighbors_ObstacleFiltered verifies obstacles never appear as neighbors.
func TestNeighbors_ObstacleFiltered(t *testing.T) {
	g, err := grid.New(3, grid.WithTopology(grid.Rect4), grid.WithObstacles(grid.Coord{X: 1, Y: 0}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := g.Neighbors(grid.Coord{X: 0, Y: 0})
	assertCoords(t, "filtered neighbors", got, []grid.Coord{{X: 0, Y: 1}})
}

// TestAdjacent verifies single-step reachability, ignoring passability.
func TestAdjacent(t *testing.T) {
	g, err := grid.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a := grid.Coord{X: 1, Y: 1} // odd row
	if !g.Adjacent(a, grid.Coord{X: 2, Y: 2}) {
		t.Error("odd-row (1,1) should reach (2,2) via offset (1,1)")
	}
	if g.Adjacent(a, grid.Coord{X: 0, Y: 2}) {
		t.Error("odd-row (1,1) must not reach (0,2): offset (-1,1) is even-row only")
	}
	b := grid.Coord{X: 1, Y: 2} // even row
	if !g.Adjacent(b, grid.Coord{X: 0, Y: 3}) {
		t.Error("even-row (1,2) should reach (0,3) via offset (-1,1)")
	}
	if g.Adjacent(a, a) {
		t.Error("a cell is not adjacent to itself")
	}
}

//----------------------------------------------------------------------------//
// Heuristic and Indexing Tests
//----------------------------------------------------------------------------//

// TestHeuristic checks the per-topology distance bounds.
func TestHeuristic(t *testing.T) {
	cases := []struct {
		name string
		top  grid.Topology
		a, b grid.Coord
		want int
	}{
		{"HexStraight", grid.Hex, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 0}, 2},
		{"HexDiagonal", grid.Hex, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 3}, 4},
		{"HexTall", grid.Hex, grid.Coord{X: 1, Y: 4}, grid.Coord{X: 2, Y: 0}, 4},
		{"HexSame", grid.Hex, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 2, Y: 2}, 0},
		{"Manhattan", grid.Rect4, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 3}, 5},
		{"Chebyshev", grid.Rect8, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 3}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(6, grid.WithTopology(tc.top))
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if got := g.Heuristic(tc.a, tc.b); got != tc.want {
				t.Errorf("Heuristic(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
			}
			// Symmetric by construction.
			if got := g.Heuristic(tc.b, tc.a); got != tc.want {
				t.Errorf("Heuristic(%v,%v) = %d; want %d", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

// TestIndexCoordinate verifies the row-major round trip on a 4×4 board.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for idx := 0; idx < 16; idx++ {
		c := g.Coordinate(idx)
		if back := g.Index(c); back != idx {
			t.Errorf("Index(Coordinate(%d)) = %d; want %d", idx, back, idx)
		}
	}
	if got := g.Index(grid.Coord{X: 3, Y: 2}); got != 11 {
		t.Errorf("Index(3,2) = %d; want 11", got)
	}
}

//----------------------------------------------------------------------------//
// CoordSet Tests
//----------------------------------------------------------------------------//

// TestCoordSet exercises membership, removal and clone independence.
func TestCoordSet(t *testing.T) {
	a, b := grid.Coord{X: 1, Y: 2}, grid.Coord{X: 2, Y: 1}
	s := grid.NewCoordSet(a)

	if !s.Has(a) || s.Has(b) {
		t.Fatalf("fresh set: Has(a)=%v Has(b)=%v; want true false", s.Has(a), s.Has(b))
	}
	s.Add(b)
	s.Add(b) // idempotent
	if s.Len() != 2 {
		t.Errorf("Len = %d; want 2", s.Len())
	}

	clone := s.Clone()
	s.Remove(a)
	if s.Has(a) {
		t.Error("Remove(a) left a in the set")
	}
	if !clone.Has(a) {
		t.Error("Clone must be independent of the original")
	}
}

// assertCoords fails unless got equals want element-wise, order included —
// neighbor order is part of the determinism contract.
func assertCoords(t *testing.T, label string, got, want []grid.Coord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v", label, got, want)
		}
	}
}
