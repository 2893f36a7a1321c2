// Package bfs finds shortest 4-connected paths on a gridgraph.Grid
// using breadth-first search.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state. The grid itself is never written;
// visited flags and predecessor links live in slices indexed by cell.
type walker struct {
	view    gridgraph.View
	opts    BFSOptions
	src     int
	dst     int
	queue   []queueItem
	visited []bool
	prev    []int
	res     *Result
}

// FindPath runs BFS from the grid's Start cell to its End cell.
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

// FindPathBetween runs BFS on g from start to goal, applying any number of
// functional Options. Markers in the grid are irrelevant here: start and goal
// are explicit, and the goal cell is visitable whenever it is not Blocked.
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
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var res *Result
	err := g.Read(func(v gridgraph.View) error {
		w := newWalker(v, o, v.Index(start), v.Index(goal))
		res = w.res
		return w.loop()
	})

	return res, err
}

func newWalker(v gridgraph.View, o BFSOptions, src, dst int) *walker {
	n := v.Len()
	w := &walker{
		view:    v,
		opts:    o,
		src:     src,
		dst:     dst,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		res:     &Result{},
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	return w
}

// loop seeds the queue with the start cell and processes it until the goal
// is dequeued, the queue empties, an error occurs, or ctx is cancelled.
func (w *walker) loop() error {
	w.enqueue(w.src, 0, -1)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.idx == w.dst {
			w.res.Found = true
			w.res.Path = w.reconstruct()
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueue marks idx visited, records its predecessor, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.visited[idx] = true
	w.prev[idx] = parent
	w.opts.OnEnqueue(w.view.Coordinate(idx), depth)
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Expanded++
	w.opts.OnDequeue(w.view.Coordinate(item.idx), item.depth)
	return item
}

// visit calls OnVisit for the dequeued cell.
func (w *walker) visit(item queueItem) error {
	c := w.view.Coordinate(item.idx)
	if err := w.opts.OnVisit(c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// enqueueNeighbors enqueues every visitable, unseen neighbor of item in the
// fixed order +x, +y, −x, −y, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	c := w.view.Coordinate(item.idx)
	for _, d := range gridgraph.Offsets4 {
		n := c.Offset(d[0], d[1])
		if !w.view.InBounds(n) {
			continue
		}
		ni := w.view.Index(n)
		if w.visited[ni] || !w.visitable(ni) {
			continue
		}
		w.enqueue(ni, nextDepth, item.idx)
	}
}

// visitable reports whether the search may step onto idx: Free or End cells,
// plus the explicit goal cell as long as it is not Blocked.
func (w *walker) visitable(idx int) bool {
	if w.view.Open(idx) {
		return true
	}
	return idx == w.dst && w.view.State(idx) != gridgraph.Blocked
}

// reconstruct follows predecessor links from the goal back to the start
// and returns the reversed, start→goal path.
func (w *walker) reconstruct() []gridgraph.Coordinate {
	var path []gridgraph.Coordinate
	for at := w.dst; at >= 0; at = w.prev[at] {
		path = append(path, w.view.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
