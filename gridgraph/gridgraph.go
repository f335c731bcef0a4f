// Package gridgraph provides construction, mutation and neighbour lookup for
// the search grid.
package gridgraph

import "fmt"

// New builds a rows×cols grid with fresh nodes, no walls, and the given
// start and finish. Start and finish may be the same cell.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOutOfBounds if an
// endpoint lies outside the grid.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, start, finish Coord) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{Rows: rows, Cols: cols}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %s in %dx%d grid", ErrOutOfBounds, finish, rows, cols)
	}

	g.nodes = make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes[r*cols+c] = Node{Row: r, Col: c}
		}
	}
	g.start, g.finish = start, finish
	g.nodes[g.Index(start)].IsStart = true
	g.nodes[g.Index(finish)].IsFinish = true

	return g, nil
}

// Rebuild returns a fresh grid of the same size with new endpoints and the
// wall layout cleared. The receiver is left untouched.
func (g *Grid) Rebuild(start, finish Coord) (*Grid, error) {
	return New(g.Rows, g.Cols, start, finish)
}

// Clone returns an independent copy of g, walls included.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.nodes = make([]Node, len(g.nodes))
	copy(cp.nodes, g.nodes)

	return &cp
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Len returns the total number of nodes.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the finish coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// Node returns the record at c. It panics if c is out of bounds,
// like any slice access.
func (g *Grid) Node(c Coord) Node {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridgraph: Node(%s) outside %dx%d grid", c, g.Rows, g.Cols))
	}
	return g.nodes[g.Index(c)]
}

// Nodes returns a copy of all nodes in row-major order.
func (g *Grid) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Row returns a copy of the nodes of row r, left to right.
func (g *Grid) Row(r int) []Node {
	out := make([]Node, g.Cols)
	copy(out, g.nodes[r*g.Cols:(r+1)*g.Cols])

	return out
}

// IsWall reports whether the cell at c is a wall. Out-of-bounds cells are not.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.nodes[g.Index(c)].IsWall
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			n++
		}
	}
	return n
}

// SetWall sets the wall flag of c.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: wall %s in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
	}
	g.nodes[g.Index(c)].IsWall = wall

	return nil
}

// ToggleWall flips the wall flag of c.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: wall %s in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
	}
	i := g.Index(c)
	g.nodes[i].IsWall = !g.nodes[i].IsWall

	return nil
}

// Neighbors returns the up to four orthogonal neighbours of c that lie in
// bounds, always in the order up, down, left, right. Walls are included;
// callers skip them.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborIndices is Neighbors over row-major indices. It appends to buf
// and returns it, so hot loops can reuse one buffer.
func (g *Grid) NeighborIndices(idx int, buf []int) []int {
	buf = buf[:0]
	c := g.Coordinate(idx)
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			buf = append(buf, g.Index(n))
		}
	}
	return buf
}
