package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached is the Depth of a cell BFS never enqueued.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called as a cell is dequeued, with its depth.
	OnVisit func(c gridgraph.Coord, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(gridgraph.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on dequeue.
func WithOnVisit(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal. Depth and Parent are indexed
// by row-major cell index.
type Result struct {
	Order  []gridgraph.Coord
	Depth  []int // hops from start, or Unreached
	Parent []int // predecessor index, or Unreached for the start and unreached cells
	cols   int
}

// DepthOf returns the hop distance of c and whether c was reached.
func (r *Result) DepthOf(c gridgraph.Coord) (int, bool) {
	idx := c.Row*r.cols + c.Col
	if c.Row < 0 || c.Col < 0 || c.Col >= r.cols || idx >= len(r.Depth) {
		return Unreached, false
	}
	d := r.Depth[idx]
	return d, d != Unreached
}

// PathTo reconstructs the path from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	if _, ok := r.DepthOf(dest); !ok {
		return nil, fmt.Errorf("bfs: no path to %s", dest)
	}
	path := []gridgraph.Coord{}
	for cur := dest.Row*r.cols + dest.Col; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, gridgraph.Coord{Row: cur / r.cols, Col: cur % r.cols})
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
