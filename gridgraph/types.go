// Package gridgraph defines the core grid types: coordinates, nodes and the
// grid itself.
package gridgraph

import "fmt"

// Reference dimensions of the visualizer board.
const (
	DefaultRows = 15
	DefaultCols = 40
)

// Layout runes understood by Parse and produced by String.
const (
	CellOpen   = '.'
	CellWall   = '#'
	CellStart  = 'S'
	CellFinish = 'F'
	CellBoth   = '*' // start and finish on the same cell
)

// Coord identifies a cell by row and column. It is immutable and unique per grid.
type Coord struct {
	Row, Col int
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Node is the static record of one cell: identity and role flags.
// It is what a presentation layer reads to lay out the board.
type Node struct {
	Row, Col int
	IsStart  bool
	IsFinish bool
	IsWall   bool
}

// Coord returns the identity of n.
func (n Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// Grid is a rows×cols board of nodes stored in row-major order.
// Rows and Cols are fixed once built; only wall flags change afterwards.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	Rows, Cols int
	nodes      []Node
	start      Coord
	finish     Coord
}

// neighborOffsets is the fixed resolution order: up, down, left, right.
// Every search relies on it, so traversal and tie-breaks stay deterministic.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
