package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// State maps each cell of one grid to its NodeState, in row-major order.
type State struct {
	rows, cols int
	nodes      []NodeState
}

// NewState returns a fully reset State sized for g.
func NewState(g *gridgraph.Grid) *State {
	s := &State{rows: g.Rows, cols: g.Cols, nodes: make([]NodeState, g.Len())}
	s.Reset()

	return s
}

// Reset restores every cell to Distance=F=Unreached, Visited=false, Prev=NoPrev.
func (s *State) Reset() {
	for i := range s.nodes {
		s.nodes[i].reset()
	}
}

// Len returns the number of cells tracked.
func (s *State) Len() int { return len(s.nodes) }

// Fits reports whether s was sized for a grid with g's dimensions.
func (s *State) Fits(g *gridgraph.Grid) bool {
	return s.rows == g.Rows && s.cols == g.Cols
}

// At returns the mutable record of cell c. Engines index with AtIndex.
func (s *State) At(c gridgraph.Coord) *NodeState {
	return &s.nodes[c.Row*s.cols+c.Col]
}

// AtIndex returns the mutable record at row-major index idx.
func (s *State) AtIndex(idx int) *NodeState {
	return &s.nodes[idx]
}

// Previous returns the predecessor of c, if any.
func (s *State) Previous(c gridgraph.Coord) (gridgraph.Coord, bool) {
	p := s.At(c).Prev
	if p == NoPrev {
		return gridgraph.Coord{}, false
	}
	return s.coord(p), true
}

// Reached reports whether c holds a finite distance.
func (s *State) Reached(c gridgraph.Coord) bool {
	return s.At(c).Distance != Unreached
}

// Visited returns every visited cell in row-major order. It is a snapshot of
// flags, not the visitation trace, which only the engine knows.
func (s *State) Visited() []gridgraph.Coord {
	var out []gridgraph.Coord
	for i := range s.nodes {
		if s.nodes[i].Visited {
			out = append(out, s.coord(i))
		}
	}
	return out
}

func (s *State) coord(idx int) gridgraph.Coord {
	return gridgraph.Coord{Row: idx / s.cols, Col: idx % s.cols}
}

// Validate checks the preconditions shared by all engines: non-nil grid and
// state, matching sizes, endpoints in bounds. op names the caller in the
// returned *InvalidGridError.
func Validate(op string, g *gridgraph.Grid, s *State, start, finish gridgraph.Coord) error {
	switch {
	case g == nil:
		return &InvalidGridError{Op: op, Err: ErrNilGrid}
	case s == nil:
		return &InvalidGridError{Op: op, Err: ErrNilState}
	case !s.Fits(g):
		return &InvalidGridError{Op: op, Err: fmt.Errorf("%w: state %dx%d, grid %dx%d",
			ErrStateMismatch, s.rows, s.cols, g.Rows, g.Cols)}
	case !g.InBounds(start):
		return &InvalidGridError{Op: op, Err: fmt.Errorf("%w: start %s", gridgraph.ErrOutOfBounds, start)}
	case !g.InBounds(finish):
		return &InvalidGridError{Op: op, Err: fmt.Errorf("%w: finish %s", gridgraph.ErrOutOfBounds, finish)}
	}
	return nil
}
