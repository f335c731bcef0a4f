package visualizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrNilAction is returned by Reduce for a nil Action.
	ErrNilAction = errors.New("visualizer: nil action")

	// ErrNoGrid is returned when an action needs a committed grid and the
	// State has none.
	ErrNoGrid = errors.New("visualizer: no committed grid")
)

// Phase is the lifecycle position of a board.
type Phase int

const (
	// PhaseGridCommitted: a grid is in place, no results for it yet.
	PhaseGridCommitted Phase = iota
	// PhaseResultsAvailable: Result belongs to the committed grid.
	PhaseResultsAvailable
)

func (p Phase) String() string {
	if p == PhaseResultsAvailable {
		return "results-available"
	}
	return "grid-committed"
}

// State is an immutable snapshot of the board. Start and Finish are the
// pending endpoint inputs; Grid carries the committed ones.
type State struct {
	Rows, Cols    int
	Start, Finish gridgraph.Coord
	Grid          *gridgraph.Grid
	Algorithm     Algorithm
	Phase         Phase
	Result        *Result
}

// NewState commits a fresh rows×cols board with the given endpoints.
func NewState(rows, cols int, start, finish gridgraph.Coord, alg Algorithm) (State, error) {
	if !alg.Valid() {
		return State{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	g, err := gridgraph.New(rows, cols, start, finish)
	if err != nil {
		return State{}, err
	}
	return State{
		Rows:      rows,
		Cols:      cols,
		Start:     start,
		Finish:    finish,
		Grid:      g,
		Algorithm: alg,
		Phase:     PhaseGridCommitted,
	}, nil
}

// StateFromGrid commits an existing grid, walls included. g must not be
// mutated afterwards; later edits go through Reduce.
func StateFromGrid(g *gridgraph.Grid, alg Algorithm) (State, error) {
	if g == nil {
		return State{}, ErrNoGrid
	}
	if !alg.Valid() {
		return State{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	return State{
		Rows:      g.Rows,
		Cols:      g.Cols,
		Start:     g.Start(),
		Finish:    g.Finish(),
		Grid:      g,
		Algorithm: alg,
		Phase:     PhaseGridCommitted,
	}, nil
}

// Action is a board event. The set is closed: SetStart, SetFinish,
// SelectAlgorithm, Apply, ToggleWall and Visualize.
type Action interface {
	reduce(ctx context.Context, v *Visualizer, s State) (State, error)
}

// SetStart edits the pending start. Values are clamped into the board.
type SetStart struct{ Row, Col int }

// SetFinish edits the pending finish. Values are clamped into the board.
type SetFinish struct{ Row, Col int }

// SelectAlgorithm picks the engine for the next Visualize.
type SelectAlgorithm struct{ Algorithm Algorithm }

// Apply rebuilds the board from the pending endpoints, dropping walls and
// results.
type Apply struct{}

// ToggleWall flips the wall flag of one cell on a copy of the grid.
type ToggleWall struct{ At gridgraph.Coord }

// Visualize runs the selected algorithm on the committed grid.
type Visualize struct{}

// Reduce folds a into s and returns the next State. s is not modified; on
// error the returned State is s unchanged.
func (v *Visualizer) Reduce(ctx context.Context, s State, a Action) (State, error) {
	if a == nil {
		return s, ErrNilAction
	}
	next, err := a.reduce(ctx, v, s)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (a SetStart) reduce(_ context.Context, _ *Visualizer, s State) (State, error) {
	s.Start = clampCoord(a.Row, a.Col, s.Rows, s.Cols)
	return s, nil
}

func (a SetFinish) reduce(_ context.Context, _ *Visualizer, s State) (State, error) {
	s.Finish = clampCoord(a.Row, a.Col, s.Rows, s.Cols)
	return s, nil
}

func (a SelectAlgorithm) reduce(_ context.Context, _ *Visualizer, s State) (State, error) {
	if !a.Algorithm.Valid() {
		return s, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a.Algorithm))
	}
	s.Algorithm = a.Algorithm
	return s, nil
}

func (Apply) reduce(_ context.Context, _ *Visualizer, s State) (State, error) {
	g, err := gridgraph.New(s.Rows, s.Cols, s.Start, s.Finish)
	if err != nil {
		return s, err
	}
	s.Grid = g
	s.Phase = PhaseGridCommitted
	s.Result = nil
	return s, nil
}

func (a ToggleWall) reduce(_ context.Context, _ *Visualizer, s State) (State, error) {
	if s.Grid == nil {
		return s, ErrNoGrid
	}
	g := s.Grid.Clone()
	if err := g.ToggleWall(a.At); err != nil {
		return s, err
	}
	s.Grid = g
	s.Phase = PhaseGridCommitted
	s.Result = nil
	return s, nil
}

func (Visualize) reduce(ctx context.Context, v *Visualizer, s State) (State, error) {
	if s.Grid == nil {
		return s, ErrNoGrid
	}
	res, err := v.Visualize(ctx, s.Algorithm, s.Grid)
	if err != nil {
		return s, err
	}
	s.Phase = PhaseResultsAvailable
	s.Result = res
	return s, nil
}

// clampCoord pins row and col into [0, rows-1] × [0, cols-1].
func clampCoord(row, col, rows, cols int) gridgraph.Coord {
	return gridgraph.Coord{Row: clamp(row, 0, rows-1), Col: clamp(col, 0, cols-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
