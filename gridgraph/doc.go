// Package gridgraph treats a 2D occupancy grid as an implicit 4-connected
// graph for the search packages of gridsearch.
//
// What:
//
//   - Grid holds a rectangular array of CellState (Free, Blocked, Start, End).
//   - Coordinates are (X, Y) with X the column and Y the row.
//   - Neighbors are always expanded in the fixed order +x, +y, −x, −y
//     (Offsets4), so every search is reproducible.
//   - Obstacles lists Blocked cells in row-major order.
//   - Reachable and FreeRegions run an independent flood fill.
//
// Locking:
//
//   - Exported Grid methods take the read lock.
//   - Read hands searches a lock-free View under the read lock.
//   - Backtrack hands searches a Transient session under the write lock;
//     Visited markings written through it are swept back to Free on return.
//
// Complexity:
//
//   - NewGrid, Parse, Obstacles, FreeRegions, Reachable: O(W×H).
//   - InBounds, At, Visitable, Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownMarker: a character or state that is not a permanent marking.
//   - ErrDuplicateMarker: more than one Start or End cell.
//   - ErrMissingStart, ErrMissingEnd: GridOptions.RequireMarkers without markers.
package gridgraph
