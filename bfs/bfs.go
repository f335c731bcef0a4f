package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *gridgraph.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	buf   []int
	res   *Result
}

// BFS runs breadth-first search on g from start over open cells.
// Returns ErrGridNil, a wrapped gridgraph.ErrOutOfBounds, ErrOptionViolation
// or the context error on cancellation.
func BFS(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("bfs: %w: start %s", gridgraph.ErrOutOfBounds, start)
	}

	n := g.Len()
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		buf:   make([]int, 0, 4),
		res: &Result{
			Order:  make([]gridgraph.Coord, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			cols:   g.Cols,
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	if !g.IsWall(start) {
		w.enqueue(g.Index(start), 0, Unreached)
	}
	return w.res, w.loop()
}

// enqueue records depth and parent and appends idx to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.res.Depth[idx] = depth
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		c := w.g.Coordinate(item.idx)
		w.res.Order = append(w.res.Order, c)
		w.opts.OnVisit(c, item.depth)

		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen open neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.buf = w.g.NeighborIndices(item.idx, w.buf)
	for _, v := range w.buf {
		if w.res.Depth[v] != Unreached || w.g.IsWall(w.g.Coordinate(v)) {
			continue
		}
		w.enqueue(v, next, item.idx)
	}
}
