package visualizer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// noPathMessage is shown whenever Cost does not exceed 1.
const noPathMessage = "There doesn't exist any path."

// Result is the outcome of one search run.
type Result struct {
	RunID     string
	Algorithm Algorithm
	Visited   []gridgraph.Coord // visitation trace, in engine order
	Path      []gridgraph.Coord // start..finish, or [finish] if unreached
	Cost      int               // len(Path)
	Elapsed   time.Duration     // engine run plus reconstruction
}

// HasPath reports Cost > 1. A start that equals the finish yields a single
// cell path and therefore counts as no path, like the board always did.
func (r *Result) HasPath() bool { return r.Cost > 1 }

// Steps returns the number of moves along Path, or 0 without a path.
func (r *Result) Steps() int {
	if !r.HasPath() {
		return 0
	}
	return r.Cost - 1
}

// Summary returns the cost line displayed under the board.
func (r *Result) Summary() string {
	if !r.HasPath() {
		return noPathMessage
	}
	return fmt.Sprintf("The cost of the shortest path is %d.", r.Cost)
}

// Timing returns the execution time line, in milliseconds with two decimals.
func (r *Result) Timing() string {
	ms := float64(r.Elapsed) / float64(time.Millisecond)
	return fmt.Sprintf("Execution Time: %.2f ms (%s)", ms, r.Algorithm)
}

// Search runs alg on g from g.Start() to g.Finish() with a fresh state table
// and reconstructs the path. opts are passed through to the engine.
func Search(alg Algorithm, g *gridgraph.Grid, opts ...search.Option) (*Result, error) {
	engine, err := alg.Engine()
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &search.InvalidGridError{Op: "visualizer", Err: search.ErrNilGrid}
	}

	st := search.NewState(g)
	began := time.Now()
	visited, err := engine(g, st, g.Start(), g.Finish(), opts...)
	if err != nil {
		return nil, err
	}
	path := search.ReconstructPath(st, g.Finish())
	elapsed := time.Since(began)

	return &Result{
		RunID:     uuid.NewString(),
		Algorithm: alg,
		Visited:   visited,
		Path:      path,
		Cost:      len(path),
		Elapsed:   elapsed,
	}, nil
}
