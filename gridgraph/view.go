package gridgraph

// View is an index-based, lock-free accessor handed to search code while the
// grid lock is held. It must not escape the callback it was passed to, and
// the callback must not call the Grid's own exported methods (they lock).
type View struct {
	g *Grid
}

// Read runs fn with a View under the grid's read lock.
// Searches that never write to the grid (BFS, flood fill) use Read.
func (g *Grid) Read(fn func(v View) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(View{g: g})
}

// Width returns the number of columns.
func (v View) Width() int { return v.g.width }

// Height returns the number of rows.
func (v View) Height() int { return v.g.height }

// Len returns the number of cells (Width×Height).
func (v View) Len() int { return len(v.g.cells) }

// InBounds reports whether c lies within the grid.
func (v View) InBounds(c Coordinate) bool { return v.g.InBounds(c) }

// Index maps an in-bounds coordinate to its row-major index.
func (v View) Index(c Coordinate) int { return v.g.index(c) }

// Coordinate converts a row-major index back to (x,y).
func (v View) Coordinate(idx int) Coordinate { return v.g.coordinate(idx) }

// State returns the state of the cell at row-major index idx.
func (v View) State(idx int) CellState { return v.g.cells[idx] }

// Open reports whether the cell at idx is Free or End.
func (v View) Open(idx int) bool {
	s := v.g.cells[idx]
	return s == Free || s == End
}

// Start returns the row-major index of the Start cell, or -1.
func (v View) Start() int { return v.g.start }

// End returns the row-major index of the End cell, or -1.
func (v View) End() int { return v.g.end }

// Transient extends View with the ability to write transient Visited
// markings. Every marking still present when the session ends is reverted.
type Transient struct {
	View
}

// Backtrack runs fn with a Transient session under the grid's write lock.
// Whatever fn returns, every cell it marked Visited is restored to Free
// before Backtrack returns, so the grid's permanent markings are unchanged.
func (g *Grid) Backtrack(fn func(t *Transient) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := &Transient{View: View{g: g}}
	defer t.restore()

	return fn(t)
}

// Mark sets the cell at idx to Visited if it is Free and reports whether it
// did. Start, End and Blocked cells are never overwritten.
func (t *Transient) Mark(idx int) bool {
	if t.g.cells[idx] != Free {
		return false
	}
	t.g.cells[idx] = Visited

	return true
}

// Unmark reverts a Visited cell at idx back to Free.
func (t *Transient) Unmark(idx int) {
	if t.g.cells[idx] == Visited {
		t.g.cells[idx] = Free
	}
}

// Marked reports whether the cell at idx currently carries a transient marking.
func (t *Transient) Marked(idx int) bool {
	return t.g.cells[idx] == Visited
}

// restore sweeps the whole grid, so it also covers cells a caller marked
// and never unmarked.
func (t *Transient) restore() {
	for idx := range t.g.cells {
		t.Unmark(idx)
	}
}
