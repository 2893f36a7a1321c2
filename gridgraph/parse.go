package gridgraph

import "fmt"

// markers maps accepted input characters to permanent cell states.
// '1' and 'X' follow the classic work-sample notation; '.' and '#' are the
// common ASCII-map aliases.
var markers = map[rune]CellState{
	'1': Free,
	'.': Free,
	'X': Blocked,
	'#': Blocked,
	'S': Start,
	'E': End,
}

// Parse builds a Grid from rows of character markers, one string per row:
//
//	'1' or '.'  Free
//	'X' or '#'  Blocked
//	'S'         Start
//	'E'         End
//
// Any other character, including the transient 'V', yields ErrUnknownMarker.
// Shape and marker validation otherwise follows NewGrid.
func Parse(rows []string, opts GridOptions) (*Grid, error) {
	cells := make([][]CellState, len(rows))
	for y, row := range rows {
		cells[y] = make([]CellState, 0, len(row))
		for x, r := range []rune(row) {
			s, ok := markers[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownMarker, r, x, y)
			}
			cells[y] = append(cells[y], s)
		}
	}

	return NewGrid(cells, opts)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows, DefaultGridOptions())
	if err != nil {
		panic(err)
	}
	return g
}
