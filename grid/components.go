package grid

// Components finds all contiguous regions of passable cells according to the
// board topology. Returns a slice of components; each component lists its
// cells in discovery order (row-major scan, then breadth-first expansion),
// so the result is deterministic for a given board.
//
// Time:   O(N·d), N = Size², d = 4, 6 or 8.
// Memory: O(N) for visited flags and output.
func (g *Grid) Components() [][]Coord {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]Coord

	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c0 := Coord{X: x, Y: y}
			if !g.Passable(c0) || seen[g.Index(c0)] {
				continue
			}
			// BFS to collect the component
			queue := []Coord{c0}
			seen[g.Index(c0)] = true
			var comp []Coord

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, d := range g.offsets(u) {
					v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
					if !g.Passable(v) {
						continue
					}
					if vi := g.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether a path of passable cells joins a and b.
// Returns false if either endpoint is out of bounds or an obstacle.
// A cheap pre-check before running a full search on boards where
// disconnection is common.
//
// Time:   O(N·d) worst case. Memory: O(N).
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, g.size*g.size)
	queue := []Coord{a}
	seen[g.Index(a)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range g.offsets(u) {
			v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
			if v == b {
				return true
			}
			if !g.Passable(v) {
				continue
			}
			if vi := g.Index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
