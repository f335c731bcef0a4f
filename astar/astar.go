package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// stepCost is the uniform cost of moving to an orthogonal neighbour.
const stepCost = 1

// AStar searches g from start towards finish, writing g, f and back-links
// into st, and returns the cells in the order they were expanded.
//
// Preconditions (validated, *search.InvalidGridError otherwise):
//  1. g and st are non-nil and st was sized for g.
//  2. start and finish lie within g.
//
// Use search.ReconstructPath(st, finish) afterwards for the path.
func AStar(g *gridgraph.Grid, st *search.State, start, finish gridgraph.Coord, opts ...search.Option) ([]gridgraph.Coord, error) {
	if err := search.Validate("astar", g, st, start, finish); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		st:      st,
		options: search.Apply(opts...),
		goal:    finish,
		finish:  g.Index(finish),
		open:    make(openSet, 0, g.Len()),
		queued:  make([]*openItem, g.Len()),
		trace:   make([]gridgraph.Coord, 0, g.Len()),
		buf:     make([]int, 0, 4),
	}
	r.init(g.Index(start))
	r.process()

	return r.trace, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	st      *search.State
	options search.Options
	goal    gridgraph.Coord
	finish  int
	open    openSet
	queued  []*openItem // cell index → its open-set entry, nil if not queued
	seq     int
	trace   []gridgraph.Coord
	buf     []int
}

// init resets the state and queues the start with g=0, f=h(start).
func (r *runner) init(start int) {
	r.st.Reset()
	heap.Init(&r.open)

	n := r.st.AtIndex(start)
	n.Distance = 0
	n.F = r.h(start)
	r.push(start, 0, n.F)
}

// process expands the best open cell until the finish is expanded or the
// open set empties.
func (r *runner) process() {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		r.queued[item.idx] = nil

		c := r.g.Coordinate(item.idx)
		if r.g.IsWall(c) {
			continue
		}
		u := r.st.AtIndex(item.idx)
		if u.Visited {
			continue
		}
		u.Visited = true
		r.trace = append(r.trace, c)
		r.options.OnVisit(c)

		if item.idx == r.finish {
			return
		}
		r.expand(item.idx)
	}
}

// expand relaxes every non-wall neighbour of u. An improved neighbour is
// queued, or re-keyed in place when already queued.
func (r *runner) expand(u int) {
	gu := r.st.AtIndex(u).Distance
	r.buf = r.g.NeighborIndices(u, r.buf)
	for _, v := range r.buf {
		if r.g.IsWall(r.g.Coordinate(v)) {
			continue
		}
		nv := r.st.AtIndex(v)
		tentative := gu + stepCost
		if tentative >= nv.Distance {
			continue
		}
		nv.Distance = tentative
		nv.F = tentative + r.h(v)
		nv.Prev = u

		if item := r.queued[v]; item != nil {
			item.g, item.f = nv.Distance, nv.F
			heap.Fix(&r.open, item.pos)
			continue
		}
		r.push(v, nv.Distance, nv.F)
	}
}

func (r *runner) push(idx, g, f int) {
	item := &openItem{idx: idx, g: g, f: f, seq: r.seq}
	r.seq++
	heap.Push(&r.open, item)
	r.queued[idx] = item
}

func (r *runner) h(idx int) int {
	return Manhattan(r.g.Coordinate(idx), r.goal)
}
