package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownMarker indicates a cell marker that does not map to a CellState.
	ErrUnknownMarker = errors.New("gridgraph: unknown cell marker")
	// ErrDuplicateMarker indicates more than one Start or End cell.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or end marker")
	// ErrMissingStart indicates the grid has no Start cell where one is required.
	ErrMissingStart = errors.New("gridgraph: grid has no start cell")
	// ErrMissingEnd indicates the grid has no End cell where one is required.
	ErrMissingEnd = errors.New("gridgraph: grid has no end cell")
)
