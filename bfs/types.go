// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: coordinate out of bounds")

	// ErrBlockedEndpoint is returned when start or goal is a Blocked cell.
	ErrBlockedEndpoint = errors.New("bfs: start or goal cell is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
// Hooks run while the grid's read lock is held and must not call methods on
// the grid being searched.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth (steps) from the start.
	OnEnqueue func(c gridgraph.Coordinate, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c gridgraph.Coordinate, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c gridgraph.Coordinate, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Coordinate, int) {},
		OnDequeue: func(gridgraph.Coordinate, int) {},
		OnVisit:   func(gridgraph.Coordinate, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coordinate, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coordinate, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c gridgraph.Coordinate, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given number of steps.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS path search:
//   - Path: start→goal coordinates, inclusive of both ends; nil if not found.
//   - Found: whether the goal was reached. A false value is a normal outcome,
//     not an error.
//   - Expanded: number of cells dequeued.
type Result struct {
	Path     []gridgraph.Coordinate
	Found    bool
	Expanded int
}

// Steps returns the number of moves along Path (len(Path)-1),
// or -1 when no path was found.
func (r *Result) Steps() int {
	if r == nil || !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
