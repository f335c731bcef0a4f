// Package search defines the shared search-state types, sentinel errors and
// options for the grid engines.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Unreached is the Distance and F sentinel of a cell no run has reached.
const Unreached = math.MaxInt

// NoPrev marks a cell without predecessor.
const NoPrev = -1

// Sentinel errors for input validation.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed to a search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilState indicates a nil *State was passed to a search.
	ErrNilState = errors.New("search: state is nil")

	// ErrStateMismatch indicates the State was built for a grid of another size.
	ErrStateMismatch = errors.New("search: state does not fit grid")
)

// InvalidGridError reports a precondition violation detected before a run.
// Err is one of the sentinels above or gridgraph.ErrOutOfBounds.
type InvalidGridError struct {
	Op  string
	Err error
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("%s: invalid grid: %v", e.Op, e.Err)
}

func (e *InvalidGridError) Unwrap() error { return e.Err }

// NodeState is the scratch record of one cell during one run.
type NodeState struct {
	Distance int  // cost from start (g for A*); Unreached if unknown
	F        int  // A* only: Distance + heuristic; Unreached otherwise
	Visited  bool // cell is in the visitation trace
	Prev     int  // row-major index of the predecessor, or NoPrev
}

// reset restores the initial sentinels.
func (n *NodeState) reset() {
	*n = NodeState{Distance: Unreached, F: Unreached, Prev: NoPrev}
}

// Options configures a search run.
//
// Logger  – receives diagnostics such as the Bellman-Ford cycle warning.
// OnVisit – invoked once per cell as it joins the visitation trace.
type Options struct {
	Logger  *slog.Logger
	OnVisit func(c gridgraph.Coord)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithLogger sets the diagnostics logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback invoked as cells join the trace.
// A nil callback is ignored.
func WithOnVisit(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns Options with slog.Default() and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.Default(),
		OnVisit: func(gridgraph.Coord) {},
	}
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
