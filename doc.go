// Package gridsearch is a small toolkit for route finding on 2D occupancy
// grids with 4-connected movement.
//
// Subpackages:
//
//	gridgraph/ — Grid, Coordinate and CellState; construction from markers,
//	             bounds/visitability, obstacle listing, flood-fill reachability
//	bfs/       — breadth-first search: fewest-step path or "not found"
//	dfs/       — backtracking depth-first search with transient markings and
//	             length-bound pruning, to contrast traversal strategies
//
// Quick ASCII example ('S' start, 'E' end, 'X' blocked, '1' free):
//
//	S 1 1
//	1 X 1
//	1 1 E
//
// bfs.FindPath returns (0,0) (1,0) (2,0) (2,1) (2,2): four steps, with ties
// broken by the fixed neighbor order +x, +y, −x, −y.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
