package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b gridgraph.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
