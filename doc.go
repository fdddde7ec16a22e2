// Package hexpath is a small, deterministic shortest-path toolkit for
// turn-based 2D game boards — hexagonal or rectangular grids with obstacles.
//
// 🚀 What is hexpath?
//
//	A pure-Go library that brings together:
//		• Board model: square coordinate space, obstacle sets, hex & rect topologies
//		• General A*: per-topology heuristics, deterministic tie-breaking
//		• Bucket search: cost-bucket frontier for uniform unit-cost grids
//		• Strategy facade: one Pathfinder contract, engine picked per board shape
//		• Component analysis: reachability and island detection on any board
//
// ✨ Why choose hexpath?
//
//   - Deterministic – identical inputs always yield identical paths
//   - Explicit contracts – sentinel errors for bad input; "no path" is not an error
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – expansion hooks for visualizers, step budgets for callers
//
// Everything is organized under four subpackages:
//
//	grid/    — Coord, CoordSet, Grid, topologies, heuristics & components
//	astar/   — general A* with a linear min-scan frontier
//	bucket/  — bucket-queue search over precomputed adjacency
//	planner/ — Pathfinder interface and per-board strategy selection
//
// Quick ASCII example (3×3 hex board, no obstacles):
//
//	    (0,0)───(1,0)───(2,0)
//	        \   /   \   /
//	        (0,1)───(1,1)
//
//	finding (0,0)→(2,0) returns [(0,0) (1,0) (2,0)] — two unit steps.
//
// Dive into the per-package docs for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/hexpath
package hexpath
