// Package planner - unified dispatcher for the hexpath search engines.
//
// This file provides the canonical entry point to build a Pathfinder:
//
//   - New: accept a *grid.Grid, resolve the strategy (Auto routes by board
//     topology), construct the backing engine, and return it behind the
//     Pathfinder interface.
//
// Design principles:
//   - One contract: both engines return forward start→end paths in an
//     astar.Result; bucket's reverse output is normalized here.
//   - Deterministic: strategy resolution depends only on board shape and
//     explicit options, never on runtime conditions.
//   - Strict sentinels: construction errors come from types.go or pass
//     through from the engine packages unchanged.
package planner

import (
	"github.com/katalvlaran/hexpath/astar"
	"github.com/katalvlaran/hexpath/bucket"
	"github.com/katalvlaran/hexpath/grid"
)

// New builds a Pathfinder over g according to the functional options.
//
// Strategy resolution:
//   - Auto (default): Bucket for Rect4/Rect8 boards, Scan for Hex boards.
//   - Scan: always valid.
//   - Bucket: returns bucket.ErrUnsupportedTopology for Hex boards.
//
// A Scan-backed planner is stateless between calls and safe for concurrent
// use. A Bucket-backed planner owns generation-stamped per-cell state and
// must not serve concurrent FindPath calls; build one per goroutine (the
// underlying grid is shared read-only either way).
//
// Complexity: O(1) for Scan; O(N·d) adjacency precomputation for Bucket.
func New(g *grid.Grid, opts ...Option) (Pathfinder, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the board.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Resolve Auto by board shape: the bucket ring requires the uniform
	//    unit-cost, consistent-heuristic regime of rectangular topologies.
	strategy := o.Strategy
	if strategy == Auto {
		if g.Topology() == grid.Hex {
			strategy = Scan
		} else {
			strategy = Bucket
		}
	}

	// 4) Construct the backing engine.
	if strategy == Bucket {
		s, err := bucket.NewSearcher(g)
		if err != nil {
			return nil, err
		}

		return &bucketPlanner{searcher: s}, nil
	}

	return &scanPlanner{grid: g, searchOpts: o.SearchOptions}, nil
}

// scanPlanner backs the Pathfinder contract with the general min-scan A*.
type scanPlanner struct {
	grid       *grid.Grid
	searchOpts []astar.Option
}

// FindPath delegates to astar.FindPath with the forwarded options.
func (p *scanPlanner) FindPath(start, end grid.Coord) (astar.Result, error) {
	return astar.FindPath(p.grid, start, end, p.searchOpts...)
}

// bucketPlanner backs the Pathfinder contract with the bucket-queue engine,
// normalizing its reverse output to the forward start→end convention.
type bucketPlanner struct {
	searcher *bucket.Searcher
}

// FindPath delegates to Searcher.Search and reorients the result.
func (p *bucketPlanner) FindPath(start, end grid.Coord) (astar.Result, error) {
	res, err := p.searcher.Search(start, end)
	if err != nil {
		return astar.Result{}, err
	}

	return astar.Result{
		Path:     res.Forward(start),
		Found:    res.Found,
		Expanded: res.Expanded,
	}, nil
}
