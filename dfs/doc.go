// Package dfs provides backtracking depth-first path search over a
// gridgraph.Grid. It contrasts with package bfs: instead of growing a
// frontier, it walks one branch at a time with an explicit stack, marks the
// branch's Free cells Visited on the grid, and reverts those markings as it
// backtracks.
//
// Algorithm:
//
//  1. Enter a cell: push it, mark it Visited if it is Free.
//  2. If a best path is known and the branch is not shorter, stop expanding.
//  3. If the cell is the goal, record the branch as the new best path.
//  4. Otherwise try neighbors in the fixed order +x, +y, −x, −y.
//  5. Leave a cell: pop it and revert its marking.
//
// The search only ends once every branch has been unwound (or cancelled), so
// on open grids it is far slower than BFS. Use WithMaxDepth or WithContext to
// bound it.
//
// Guarantees:
//
//   - Found paths are valid 4-connected routes over Free/End cells.
//   - The grid's permanent markings are identical before and after the call,
//     whatever the outcome.
//   - Paths are not promised to be shortest; callers wanting that use bfs.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnVisit(fn)       pre-order hook on cell entry; error aborts search.
//   - WithOnImprove(fn)     called with each new best path.
//   - WithMaxDepth(limit)   stops branches beyond limit steps (>=0).
//
// Errors:
//
//   - ErrGridNil               if g is nil.
//   - ErrOutOfBounds           if start or goal lies outside the grid.
//   - ErrBlockedEndpoint       if start or goal is Blocked.
//   - ErrOptionViolation       if MaxDepth is negative.
//   - gridgraph.ErrMissingStart / ErrMissingEnd for FindPath on unmarked grids.
//   - context.Canceled         if ctx is done.
//   - any error returned by OnVisit.
package dfs
