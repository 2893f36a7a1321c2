package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// xy is shorthand for a coordinate literal.
func xy(x, y int) gridgraph.Coordinate { return gridgraph.Coordinate{X: x, Y: y} }

// workSample is the 10×10 delivery grid: obstacles at (6,7),(8,7),(9,7),(6,8),
// start (0,0), end (9,9).
func workSample(t testing.TB) *gridgraph.Grid {
	g, err := gridgraph.Parse([]string{
		"S111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"111111X1XX",
		"111111X111",
		"111111111E",
	}, gridgraph.GridOptions{RequireMarkers: true})
	require.NoError(t, err)
	return g
}

// randomGrid builds a w×h grid with ~density/10 obstacles, Start at (0,0)
// and End at (w-1,h-1).
func randomGrid(w, h, density int, seed int64) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]gridgraph.CellState, h)
	for y := range cells {
		cells[y] = make([]gridgraph.CellState, w)
		for x := range cells[y] {
			if rng.Intn(10) < density {
				cells[y][x] = gridgraph.Blocked
			}
		}
	}
	cells[0][0] = gridgraph.Start
	cells[h-1][w-1] = gridgraph.End
	g, err := gridgraph.NewGrid(cells, gridgraph.GridOptions{RequireMarkers: true})
	if err != nil {
		panic(err)
	}
	return g
}

// assertValidPath checks endpoints, unit 4-connected steps and that no step
// lands on a Blocked cell.
func assertValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Coordinate, from, to gridgraph.Coordinate) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0], "path must start at the start cell")
	assert.Equal(t, to, path[len(path)-1], "path must end at the goal cell")
	for i, c := range path {
		assert.NotEqual(t, gridgraph.Blocked, g.At(c), "step %d lands on blocked %v", i, c)
		if i > 0 {
			assert.Equal(t, 1, path[i-1].Manhattan(c), "step %d: %v -> %v is not a unit move", i, path[i-1], c)
		}
	}
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestFindPath_Errors verifies that invalid inputs and options are rejected.
func TestFindPath_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.FindPath(nil); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	if _, err := bfs.FindPathBetween(nil, xy(0, 0), xy(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	// markers missing
	if _, err := bfs.FindPath(gridgraph.MustParse("11E")); !errors.Is(err, gridgraph.ErrMissingStart) {
		t.Errorf("no start: want ErrMissingStart, got %v", err)
	}
	if _, err := bfs.FindPath(gridgraph.MustParse("S11")); !errors.Is(err, gridgraph.ErrMissingEnd) {
		t.Errorf("no end: want ErrMissingEnd, got %v", err)
	}
	// endpoints
	g := gridgraph.MustParse("1X1")
	if _, err := bfs.FindPathBetween(g, xy(0, 0), xy(3, 0)); !errors.Is(err, bfs.ErrOutOfBounds) {
		t.Errorf("goal out of bounds: want ErrOutOfBounds, got %v", err)
	}
	if _, err := bfs.FindPathBetween(g, xy(0, -1), xy(2, 0)); !errors.Is(err, bfs.ErrOutOfBounds) {
		t.Errorf("start out of bounds: want ErrOutOfBounds, got %v", err)
	}
	if _, err := bfs.FindPathBetween(g, xy(0, 0), xy(1, 0)); !errors.Is(err, bfs.ErrBlockedEndpoint) {
		t.Errorf("blocked goal: want ErrBlockedEndpoint, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.FindPath(gridgraph.MustParse("SE"), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestFindPath_WorkSample: the obstacles do not cut the direct corridor, so
// the shortest route is the Manhattan distance (18 steps).
func TestFindPath_WorkSample(t *testing.T) {
	g := workSample(t)
	res, err := bfs.FindPath(g)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 18, res.Steps())
	assert.Len(t, res.Path, 19)
	assertValidPath(t, g, res.Path, xy(0, 0), xy(9, 9))
	assert.LessOrEqual(t, res.Expanded, 100)
}

// TestFindPath_TieBreak pins the route chosen by the +x, +y, −x, −y order.
func TestFindPath_TieBreak(t *testing.T) {
	g := gridgraph.MustParse(
		"S11",
		"111",
		"11E",
	)
	res, err := bfs.FindPath(g)
	require.NoError(t, err)

	want := []gridgraph.Coordinate{xy(0, 0), xy(1, 0), xy(2, 0), xy(2, 1), xy(2, 2)}
	assert.Equal(t, want, res.Path)
}

// TestFindPath_Detour forces the route around a wall.
func TestFindPath_Detour(t *testing.T) {
	g := gridgraph.MustParse(
		"S1X1E",
		"11X11",
		"11111",
	)
	res, err := bfs.FindPath(g)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 8, res.Steps())
	assertValidPath(t, g, res.Path, xy(0, 0), xy(4, 0))
}

// TestFindPath_EnclosedEnd: End is walled on all four sides.
func TestFindPath_EnclosedEnd(t *testing.T) {
	g := gridgraph.MustParse(
		"S1111",
		"111X1",
		"11XEX",
		"111X1",
	)
	res, err := bfs.FindPath(g)
	require.NoError(t, err, "no path is not an error")
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, -1, res.Steps())
	assert.Positive(t, res.Expanded)
}

// TestFindPathBetween_SameCell returns the single-cell path.
func TestFindPathBetween_SameCell(t *testing.T) {
	g := gridgraph.MustParse("111")
	res, err := bfs.FindPathBetween(g, xy(1, 0), xy(1, 0))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Coordinate{xy(1, 0)}, res.Path)
	assert.Equal(t, 0, res.Steps())
}

// TestFindPathBetween_Occupancy runs the coordinate variant on an unmarked
// 0/1 grid, like the delivery driver does.
func TestFindPathBetween_Occupancy(t *testing.T) {
	g, err := gridgraph.FromOccupancy([][]int{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 0},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	res, err := bfs.FindPathBetween(g, xy(0, 0), xy(3, 4))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 13, res.Steps())
	assertValidPath(t, g, res.Path, xy(0, 0), xy(3, 4))
}

// TestFindPathBetween_PassesThroughMarkers: End markers that are not the
// goal stay traversable, Start markers do not.
func TestFindPathBetween_PassesThroughMarkers(t *testing.T) {
	g := gridgraph.MustParse("1E1S")
	res, err := bfs.FindPathBetween(g, xy(0, 0), xy(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coordinate{xy(0, 0), xy(1, 0), xy(2, 0)}, res.Path)

	res, err = bfs.FindPathBetween(g, xy(2, 0), xy(3, 0))
	require.NoError(t, err)
	assert.True(t, res.Found, "an explicit goal is visitable even on a Start marker")
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestFindPath_StraightCorridor: with nothing in the way, steps equal the
// Manhattan distance.
func TestFindPath_StraightCorridor(t *testing.T) {
	for n := 1; n <= 12; n++ {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			g, err := gridgraph.FromOccupancy([][]int{make([]int, n+1)}, gridgraph.DefaultGridOptions())
			require.NoError(t, err)
			res, err := bfs.FindPathBetween(g, xy(0, 0), xy(n, 0))
			require.NoError(t, err)
			assert.Equal(t, xy(0, 0).Manhattan(xy(n, 0)), res.Steps())
		})
	}
}

// TestFindPath_RandomGrids cross-checks BFS against an independent flood fill
// on seeded random grids, and checks every returned path step by step.
func TestFindPath_RandomGrids(t *testing.T) {
	found, missing := 0, 0
	for seed := int64(1); seed <= 200; seed++ {
		g := randomGrid(8, 6, 3, seed)
		res, err := bfs.FindPath(g)
		require.NoError(t, err)

		reachable := g.Reachable(xy(0, 0), xy(7, 5))
		require.Equal(t, reachable, res.Found, "seed %d:\n%s", seed, g)
		if !res.Found {
			missing++
			continue
		}
		found++
		assertValidPath(t, g, res.Path, xy(0, 0), xy(7, 5))
		assert.GreaterOrEqual(t, res.Steps(), xy(0, 0).Manhattan(xy(7, 5)))
	}
	assert.Positive(t, found)
	assert.Positive(t, missing)
}

// TestFindPath_Idempotent: two runs on an unchanged grid agree, and the grid
// is left untouched.
func TestFindPath_Idempotent(t *testing.T) {
	g := randomGrid(12, 12, 2, 99)
	before := g.Cells()

	a, errA := bfs.FindPath(g)
	b, errB := bfs.FindPath(g)
	require.NoError(t, errA)
	require.NoError(t, errB)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ:\n%v\n%v", a, b)
	}
	assert.Equal(t, before, g.Cells())
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

// TestFindPath_MaxDepth cuts the search before the goal.
func TestFindPath_MaxDepth(t *testing.T) {
	g := gridgraph.MustParse("S111E")

	res, err := bfs.FindPath(g, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = bfs.FindPath(g, bfs.WithMaxDepth(4))
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = bfs.FindPath(g, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Found, "0 disables the limit")
}

// TestFindPath_Hooks records enqueue/dequeue/visit order on a corridor.
func TestFindPath_Hooks(t *testing.T) {
	g := gridgraph.MustParse("S1E")
	var enq, deq, vis []string
	res, err := bfs.FindPath(g,
		bfs.WithOnEnqueue(func(c gridgraph.Coordinate, d int) { enq = append(enq, fmt.Sprintf("%v@%d", c, d)) }),
		bfs.WithOnDequeue(func(c gridgraph.Coordinate, d int) { deq = append(deq, fmt.Sprintf("%v@%d", c, d)) }),
		bfs.WithOnVisit(func(c gridgraph.Coordinate, d int) error {
			vis = append(vis, fmt.Sprintf("%v@%d", c, d))
			return nil
		}),
	)
	require.NoError(t, err)
	require.True(t, res.Found)

	want := []string{"(0,0)@0", "(1,0)@1", "(2,0)@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
	assert.Equal(t, 3, res.Expanded)
}

// TestFindPath_OnVisitError aborts and wraps the hook error.
func TestFindPath_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	g := gridgraph.MustParse("S11E")
	_, err := bfs.FindPath(g, bfs.WithOnVisit(func(c gridgraph.Coordinate, _ int) error {
		if c == xy(2, 0) {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "(2,0)")
}

// TestFindPath_Cancelled returns ctx.Err() for a cancelled context.
func TestFindPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.FindPath(workSample(t), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
