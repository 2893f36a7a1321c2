// Package dfs defines types and options for backtracking depth-first path
// search, including cancellation, a pre-order hook, an improvement hook,
// and depth limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("dfs: coordinate out of bounds")

	// ErrBlockedEndpoint is returned when start or goal is a Blocked cell.
	ErrBlockedEndpoint = errors.New("dfs: start or goal cell is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the search.
// Use with FindPath(g, opts...) or FindPathBetween(g, start, goal, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the search.
// Hooks run while the grid's write lock is held; calling methods on the grid
// being searched from a hook deadlocks.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early; the grid is still
	// restored before returning.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a cell is entered (pre-order),
	// with depth = number of steps from the start along the current branch.
	// Returning an error aborts the search with that error.
	OnVisit func(c gridgraph.Coordinate, depth int) error

	// OnImprove, if non-nil, is invoked with a copy of every path that
	// replaces the best known path.
	OnImprove func(path []gridgraph.Coordinate)

	// MaxDepth, if non-negative, limits branches to the given number of steps.
	// A depth of 0 only enters the start cell. Default is -1 (no limit).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		OnVisit:   nil,
		OnImprove: nil,
		MaxDepth:  -1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c gridgraph.Coordinate, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnImprove returns an Option that installs fn as the improvement hook.
func WithOnImprove(fn func(path []gridgraph.Coordinate)) Option {
	return func(o *DFSOptions) {
		o.OnImprove = fn
	}
}

// WithMaxDepth returns an Option that limits branches to limit steps.
// A limit of 0 means only the start cell is entered; a negative limit is
// recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a backtracking search.
type Result struct {
	// Path is the best start→goal route found, inclusive of both ends;
	// nil when the goal was never reached.
	Path []gridgraph.Coordinate

	// Found reports whether the goal was reached. A false value is a normal
	// outcome, not an error.
	Found bool

	// Expanded counts how many times a cell was entered across all branches.
	Expanded int

	// Improvements counts how many times the best path was replaced.
	Improvements int
}

// Steps returns the number of moves along Path (len(Path)-1),
// or -1 when no path was found.
func (r *Result) Steps() int {
	if r == nil || !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
