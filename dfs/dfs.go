// Package dfs implements backtracking depth-first path search on a
// gridgraph.Grid with an explicit stack, transient Visited markings and
// length-bound pruning.
//
// Key features:
//   - FindPath(g, opts...): Start marker → End marker
//   - FindPathBetween(g, start, goal, opts...): explicit coordinates
//   - Transient markings restored on every exit path, including errors
//   - Hooks: OnVisit (pre-order, error aborts) and OnImprove
//   - Limits: MaxDepth; cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case; every simple path shorter than
//     the best known one is explored.
//   - Memory: O(W×H) for the branch stack and on-stack flags.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// frame is one entry of the explicit branch stack.
type frame struct {
	idx    int  // row-major cell index
	next   int  // position in gridgraph.Offsets4 of the next neighbor to try
	marked bool // whether entering this cell wrote a transient marking
}

// dfsWalker encapsulates state during the search.
type dfsWalker struct {
	t       *gridgraph.Transient
	opts    DFSOptions
	dst     int
	stack   []frame
	onStack []bool
	best    []gridgraph.Coordinate
	res     *Result
}

// FindPath searches from the grid's Start cell to its End cell.
// Returns gridgraph.ErrMissingStart or gridgraph.ErrMissingEnd if the grid
// carries no such marker. See FindPathBetween for the remaining contract.
func FindPath(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, ok := g.Start()
	if !ok {
		return nil, gridgraph.ErrMissingStart
	}
	end, ok := g.End()
	if !ok {
		return nil, gridgraph.ErrMissingEnd
	}

	return search(g, start, end, opts)
}

// FindPathBetween searches g from start to goal by exhaustive backtracking.
// While a branch is open its Free cells are marked Visited on the grid; every
// marking is reverted before FindPathBetween returns, found or not.
//
// The returned path is valid but callers should not rely on it being the
// shortest one; use package bfs for that guarantee.
//
// An unreachable goal is reported as Result.Found == false with a nil error.
// Returns ErrGridNil, ErrOutOfBounds or ErrBlockedEndpoint for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or a wrapped
// OnVisit hook error.
func FindPathBetween(g *gridgraph.Grid, start, goal gridgraph.Coordinate, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	for _, c := range [...]gridgraph.Coordinate{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width(), g.Height())
		}
		if g.At(c) == gridgraph.Blocked {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	return search(g, start, goal, opts)
}

func search(g *gridgraph.Grid, start, goal gridgraph.Coordinate, opts []Option) (*Result, error) {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	res := &Result{}
	err := g.Backtrack(func(t *gridgraph.Transient) error {
		w := &dfsWalker{
			t:       t,
			opts:    dopts,
			dst:     t.Index(goal),
			stack:   make([]frame, 0, t.Len()),
			onStack: make([]bool, t.Len()),
			res:     res,
		}
		return w.run(t.Index(start))
	})

	return res, err
}

// run drives the explicit stack until every branch has been unwound.
func (w *dfsWalker) run(src int) error {
	if err := w.enter(src); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		// cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(gridgraph.Offsets4) {
			w.leave()
			continue
		}
		d := gridgraph.Offsets4[top.next]
		top.next++

		n := w.t.Coordinate(top.idx).Offset(d[0], d[1])
		if !w.t.InBounds(n) {
			continue
		}
		ni := w.t.Index(n)
		if !w.visitable(ni) {
			continue
		}
		if err := w.enter(ni); err != nil {
			return err
		}
	}

	return nil
}

// enter pushes idx, writes its transient marking, and decides whether the
// new frame is expanded: it is not when the branch is already as long as the
// best path, when idx is the goal, or when MaxDepth is reached.
func (w *dfsWalker) enter(idx int) error {
	depth := len(w.stack)
	w.stack = append(w.stack, frame{idx: idx, marked: w.t.Mark(idx)})
	w.onStack[idx] = true
	w.res.Expanded++

	if w.opts.OnVisit != nil {
		c := w.t.Coordinate(idx)
		if err := w.opts.OnVisit(c, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	top := &w.stack[len(w.stack)-1]
	switch {
	case w.best != nil && len(w.stack) >= len(w.best):
		top.next = len(gridgraph.Offsets4)
	case idx == w.dst:
		w.record()
		top.next = len(gridgraph.Offsets4)
	case w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth:
		top.next = len(gridgraph.Offsets4)
	}

	return nil
}

// leave pops the top frame and reverts its transient marking.
func (w *dfsWalker) leave() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.onStack[top.idx] = false
	if top.marked {
		w.t.Unmark(top.idx)
	}
}

// record snapshots the current branch as the new best path.
func (w *dfsWalker) record() {
	path := make([]gridgraph.Coordinate, len(w.stack))
	for i, f := range w.stack {
		path[i] = w.t.Coordinate(f.idx)
	}
	w.best = path
	w.res.Path = path
	w.res.Found = true
	w.res.Improvements++

	if w.opts.OnImprove != nil {
		cp := make([]gridgraph.Coordinate, len(path))
		copy(cp, path)
		w.opts.OnImprove(cp)
	}
}

// visitable reports whether the walker may step onto idx: a Free or End
// cell, or the explicit goal if it is not Blocked, and never a cell already
// on the current branch.
func (w *dfsWalker) visitable(idx int) bool {
	if w.onStack[idx] {
		return false
	}
	if w.t.Open(idx) {
		return true
	}
	return idx == w.dst && w.t.State(idx) != gridgraph.Blocked
}
