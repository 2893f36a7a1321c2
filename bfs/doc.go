// Package bfs provides breadth-first shortest-path search over a
// gridgraph.Grid, returning the fewest-step 4-connected route between two
// cells, or an explicit "not found" result.
//
// What
//
//   - FindPath searches from the grid's Start marker to its End marker.
//   - FindPathBetween searches between two explicit coordinates.
//   - Neighbors are expanded in the fixed order +x, +y, −x, −y, so ties
//     between equal-length routes always break the same way.
//   - The returned Path includes both start and goal; Result.Steps() is the
//     number of moves.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Side effects
//
//	None. Visited flags and predecessor links live in per-call slices indexed
//	by cell, and the grid is only read (under its read lock).
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(N)   (queue, visited flags, predecessor links)
//
// Usage
//
//	g, _ := gridgraph.Parse([]string{
//		"S11",
//		"1X1",
//		"11E",
//	}, gridgraph.DefaultGridOptions())
//	res, err := bfs.FindPath(g)
//	if err != nil {
//		// ErrGridNil, gridgraph.ErrMissingStart/ErrMissingEnd, ErrOptionViolation, ...
//	}
//	if !res.Found {
//		// no route
//	}
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or goal lies outside the grid.
//   - ErrBlockedEndpoint  if start or goal is Blocked.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - gridgraph.ErrMissingStart / ErrMissingEnd for FindPath on unmarked grids.
//   - ctx.Err() on cancellation, and wrapped OnVisit hook errors.
package bfs
