// Package dijkstra implements Dijkstra's algorithm on a uniform-cost grid.
//
// Notes on implementation choices:
//
//   - Edge weight is the constant 1; there is no weight pre-scan.
//   - Walls are filtered by the caller side of the neighbour resolver: they
//     are never pushed, so the heap holds open cells only.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose cell is already visited.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// stepCost is the uniform cost of moving to an orthogonal neighbour.
const stepCost = 1

// Dijkstra searches g from start towards finish, writing distances and
// back-links into st, and returns the cells in the order they were finalized.
//
// Preconditions (validated, *search.InvalidGridError otherwise):
//  1. g and st are non-nil and st was sized for g.
//  2. start and finish lie within g.
//
// The returned trace is never longer than the number of open cells.
// Use search.ReconstructPath(st, finish) afterwards for the path.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Dijkstra(g *gridgraph.Grid, st *search.State, start, finish gridgraph.Coord, opts ...search.Option) ([]gridgraph.Coord, error) {
	if err := search.Validate("dijkstra", g, st, start, finish); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		st:      st,
		options: search.Apply(opts...),
		start:   g.Index(start),
		finish:  g.Index(finish),
		pq:      make(nodePQ, 0, g.Len()),
		trace:   make([]gridgraph.Coord, 0, g.Len()),
		buf:     make([]int, 0, 4),
	}
	r.init()
	r.process()

	return r.trace, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid   // The input grid; read-only within Dijkstra.
	st      *search.State     // Per-cell distances, flags and back-links.
	options search.Options    // Logger and hooks.
	start   int               // Row-major index of the start cell.
	finish  int               // Row-major index of the finish cell.
	pq      nodePQ            // Min-heap for lazy decrease-key.
	seq     int               // Next insertion sequence number.
	trace   []gridgraph.Coord // Cells in the order they were finalized.
	buf     []int             // Reused neighbour buffer.
}

// init sets every distance to Unreached and every back-link to none, then
// seeds the heap with the start at distance 0 unless it is a wall.
// Visited flags are left as the caller prepared them.
func (r *runner) init() {
	for i := 0; i < r.st.Len(); i++ {
		n := r.st.AtIndex(i)
		n.Distance = search.Unreached
		n.F = search.Unreached
		n.Prev = search.NoPrev
	}
	r.st.AtIndex(r.start).Distance = 0

	heap.Init(&r.pq)
	if r.g.IsWall(r.g.Coordinate(r.start)) {
		return
	}
	r.push(r.start, 0)
}

// process repeatedly finalizes the closest unvisited cell until the finish
// is popped or the heap empties.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := r.st.AtIndex(item.idx)

		// Stale entry or cell already finalized by an earlier run.
		if u.Visited {
			continue
		}

		u.Visited = true
		c := r.g.Coordinate(item.idx)
		r.trace = append(r.trace, c)
		r.options.OnVisit(c)

		if item.idx == r.finish {
			return
		}
		r.relax(item.idx)
	}
}

// relax offers u.Distance+1 to every unvisited, non-wall neighbour of u and
// pushes the neighbours that improved.
func (r *runner) relax(u int) {
	du := r.st.AtIndex(u).Distance
	r.buf = r.g.NeighborIndices(u, r.buf)
	for _, v := range r.buf {
		if r.g.IsWall(r.g.Coordinate(v)) {
			continue
		}
		nv := r.st.AtIndex(v)
		if nv.Visited {
			continue
		}
		newDist := du + stepCost
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= nv.Distance {
			continue
		}
		nv.Distance = newDist
		nv.Prev = u
		r.push(v, newDist)
	}
}

func (r *runner) push(idx, dist int) {
	heap.Push(&r.pq, nodeItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}
