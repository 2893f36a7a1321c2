// Package gridgraph provides a rectangular occupancy grid that search
// packages treat as an implicit 4-connected graph. It supports:
//
//   - Construction from CellState rows, character markers, or 0/1 occupancy
//   - Bounds and visitability checks with a fixed neighbor order
//   - Obstacle enumeration and flood-fill reachability
//   - Locked read views and transient-marking sessions for searches
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// permanent cell states (Free, Blocked, Start, End). Rows are indexed by Y.
// It deep-copies the input to ensure immutability of permanent markings.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrUnknownMarker for a
// Visited or out-of-range state, ErrDuplicateMarker for a second Start or End,
// and ErrMissingStart/ErrMissingEnd if opts.RequireMarkers is set.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]CellState, opts GridOptions) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]CellState, 0, w*h),
		start:  -1,
		end:    -1,
	}
	for y, row := range cells {
		for x, s := range row {
			if !s.Permanent() {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrUnknownMarker, s, x, y)
			}
			i := len(g.cells)
			switch s {
			case Start:
				if g.start >= 0 {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateMarker, x, y)
				}
				g.start = i
			case End:
				if g.end >= 0 {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateMarker, x, y)
				}
				g.end = i
			}
			g.cells = append(g.cells, s)
		}
	}

	if opts.RequireMarkers {
		if g.start < 0 {
			return nil, ErrMissingStart
		}
		if g.end < 0 {
			return nil, ErrMissingEnd
		}
	}

	return g, nil
}

// FromOccupancy builds a Grid from an integer occupancy map where 0 is free
// and any other value is blocked. The result carries no Start or End marker,
// so opts.RequireMarkers always fails here.
func FromOccupancy(values [][]int, opts GridOptions) (*Grid, error) {
	cells := make([][]CellState, len(values))
	for y, row := range values {
		cells[y] = make([]CellState, len(row))
		for x, v := range row {
			if v != 0 {
				cells[y][x] = Blocked
			}
		}
	}

	return NewGrid(cells, opts)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the state of cell c. Out-of-bounds coordinates report Blocked.
func (g *Grid) At(c Coordinate) CellState {
	if !g.InBounds(c) {
		return Blocked
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(c)]
}

// Visitable reports whether a search may step onto c: c is in bounds and
// its state is Free or End.
func (g *Grid) Visitable(c Coordinate) bool {
	s := g.At(c)
	return s == Free || s == End
}

// Neighbors returns the visitable 4-connected neighbors of c in the fixed
// order +x, +y, −x, −y. Out-of-bounds positions are silently skipped.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(Offsets4))
	for _, d := range Offsets4 {
		n := c.Offset(d[0], d[1])
		if g.Visitable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Start returns the Start cell, if the grid has one.
func (g *Grid) Start() (Coordinate, bool) {
	if g.start < 0 {
		return Coordinate{}, false
	}
	return g.coordinate(g.start), true
}

// End returns the End cell, if the grid has one.
func (g *Grid) End() (Coordinate, bool) {
	if g.end < 0 {
		return Coordinate{}, false
	}
	return g.coordinate(g.end), true
}

// Obstacles lists every Blocked cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) Obstacles() []Coordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Coordinate
	for i, s := range g.cells {
		if s == Blocked {
			out = append(out, g.coordinate(i))
		}
	}

	return out
}

// Cells returns a deep copy of the grid as rows of CellState.
func (g *Grid) Cells() [][]CellState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rows := make([][]CellState, g.height)
	for y := range rows {
		rows[y] = make([]CellState, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
		start:  g.start,
		end:    g.end,
	}
}

// String renders the grid one row per line using CellState markers.
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i, s := range g.cells {
		sb.WriteString(s.String())
		if (i+1)%g.width == 0 && i+1 < len(g.cells) {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*width + x.
// Complexity: O(1).
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}
