package gridgraph

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one string per row.
// Spaces are ignored, so "S . #" and "S.#" are equivalent.
//
//	'.' open   '#' wall   'S' start   'F' finish   '*' start and finish
//
// Exactly one start and one finish are required.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell,
// ErrMissingEndpoint or ErrDuplicateEndpoint.
func Parse(lines []string) (*Grid, error) {
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])

	var starts, finishes []Coord
	var walls []Coord
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, ch := range row {
			at := Coord{Row: r, Col: c}
			switch ch {
			case CellOpen:
			case CellWall:
				walls = append(walls, at)
			case CellStart:
				starts = append(starts, at)
			case CellFinish:
				finishes = append(finishes, at)
			case CellBoth:
				starts = append(starts, at)
				finishes = append(finishes, at)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownCell, ch, at)
			}
		}
	}
	if len(starts) == 0 || len(finishes) == 0 {
		return nil, ErrMissingEndpoint
	}
	if len(starts) > 1 || len(finishes) > 1 {
		return nil, fmt.Errorf("%w: %d starts, %d finishes", ErrDuplicateEndpoint, len(starts), len(finishes))
	}

	g, err := New(len(rows), cols, starts[0], finishes[0])
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.nodes[g.Index(w)].IsWall = true
	}

	return g, nil
}

// String renders g in the layout format accepted by Parse, one row per line.
// A walled start or finish is written as its endpoint rune, so the wall flag
// on an endpoint does not survive a round trip.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(cellRune(g.nodes[r*g.Cols+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(n Node) rune {
	switch {
	case n.IsStart && n.IsFinish:
		return CellBoth
	case n.IsStart:
		return CellStart
	case n.IsFinish:
		return CellFinish
	case n.IsWall:
		return CellWall
	default:
		return CellOpen
	}
}
