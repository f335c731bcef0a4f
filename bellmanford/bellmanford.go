package bellmanford

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// stepCost is the uniform cost of moving to an orthogonal neighbour.
const stepCost = 1

// BellmanFord searches g from start, writing distances and back-links into st,
// and returns the cells in the order they were marked reached (batched per
// relaxation pass, row-major within a pass).
//
// finish is validated but does not stop the search early.
// Errors: *search.InvalidGridError for invalid inputs.
func BellmanFord(g *gridgraph.Grid, st *search.State, start, finish gridgraph.Coord, opts ...search.Option) ([]gridgraph.Coord, error) {
	if err := search.Validate("bellmanford", g, st, start, finish); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		st:      st,
		options: search.Apply(opts...),
		trace:   make([]gridgraph.Coord, 0, g.Len()),
		buf:     make([]int, 0, 4),
	}
	r.init(g.Index(start))
	passes := r.process()
	r.checkNegativeCycle(start, passes)

	return r.trace, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	g       *gridgraph.Grid
	st      *search.State
	options search.Options
	trace   []gridgraph.Coord
	buf     []int
}

// init resets every cell and sets the start distance to 0.
func (r *runner) init(start int) {
	r.st.Reset()
	r.st.AtIndex(start).Distance = 0
}

// process runs up to V−1 relaxation passes and returns how many ran.
func (r *runner) process() int {
	passes := 0
	for i := 0; i < r.st.Len()-1; i++ {
		passes++
		updated := r.relaxAll()
		r.markReached()
		if !updated {
			break
		}
	}
	return passes
}

// relaxAll performs one row-major pass and reports whether any distance changed.
func (r *runner) relaxAll() bool {
	updated := false
	for u := 0; u < r.st.Len(); u++ {
		du := r.st.AtIndex(u).Distance
		if du == search.Unreached || r.isWall(u) {
			continue
		}
		r.buf = r.g.NeighborIndices(u, r.buf)
		for _, v := range r.buf {
			if r.isWall(v) {
				continue
			}
			nv := r.st.AtIndex(v)
			if du+stepCost < nv.Distance {
				nv.Distance = du + stepCost
				nv.Prev = u
				updated = true
			}
		}
	}
	return updated
}

// markReached appends every newly reached open cell to the trace, row-major.
func (r *runner) markReached() {
	for i := 0; i < r.st.Len(); i++ {
		n := r.st.AtIndex(i)
		if n.Distance == search.Unreached || n.Visited || r.isWall(i) {
			continue
		}
		n.Visited = true
		c := r.g.Coordinate(i)
		r.trace = append(r.trace, c)
		r.options.OnVisit(c)
	}
}

// checkNegativeCycle logs a warning when an edge is still relaxable after
// the passes and reports whether it did. The trace is left untouched.
func (r *runner) checkNegativeCycle(start gridgraph.Coord, passes int) bool {
	if !r.hasRelaxableEdge() {
		return false
	}
	r.options.Logger.Warn("bellmanford: negative weight cycle detected",
		slog.String("start", start.String()),
		slog.Int("passes", passes))

	return true
}

// hasRelaxableEdge reports whether any edge could still shorten a distance
// after the passes, which only a negative cycle can cause.
func (r *runner) hasRelaxableEdge() bool {
	for u := 0; u < r.st.Len(); u++ {
		du := r.st.AtIndex(u).Distance
		if du == search.Unreached || r.isWall(u) {
			continue
		}
		r.buf = r.g.NeighborIndices(u, r.buf)
		for _, v := range r.buf {
			if r.isWall(v) {
				continue
			}
			if du+stepCost < r.st.AtIndex(v).Distance {
				return true
			}
		}
	}
	return false
}

func (r *runner) isWall(idx int) bool {
	return r.g.IsWall(r.g.Coordinate(idx))
}
