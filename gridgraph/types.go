// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridsearch.
package gridgraph

import (
	"fmt"
	"sync"
)

// CellState is the marking of a single grid cell.
type CellState uint8

const (
	// Free is an open cell that searches may step onto.
	Free CellState = iota
	// Blocked is an obstacle; never visitable.
	Blocked
	// Start marks the origin of a marker-based search.
	Start
	// End marks the goal of a marker-based search.
	End
	// Visited is a transient marking written by backtracking searches.
	// It is always reverted to Free before the search returns.
	Visited
)

// String returns the single-character marker for s.
func (s CellState) String() string {
	switch s {
	case Free:
		return "."
	case Blocked:
		return "X"
	case Start:
		return "S"
	case End:
		return "E"
	case Visited:
		return "V"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Permanent reports whether s is one of the markings a caller may construct
// a grid with (everything except Visited).
func (s CellState) Permanent() bool {
	return s <= End
}

// Coordinate is an (X, Y) cell position. X selects the column, Y the row.
// Coordinates compare by value and may be used as map keys.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset returns the coordinate shifted by (dx, dy).
func (c Coordinate) Offset(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Offsets4 lists the 4-connected neighbor offsets in expansion order:
// +x, +y, −x, −y. Every search in this module expands neighbors in this order.
var Offsets4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// RequireMarkers rejects grids that lack a Start or End cell.
	RequireMarkers bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// markers are optional (coordinate-based searches need none).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		RequireMarkers: false,
	}
}

// Grid is a rectangular occupancy grid. Dimensions are fixed once built.
// cells is stored row-major: cells[y*width+x].
//
// Grid is safe to share between goroutines, but searches that write transient
// markings hold the write lock for their whole duration.
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	cells  []CellState
	start  int // row-major index of the Start cell, -1 if none
	end    int // row-major index of the End cell, -1 if none
}
