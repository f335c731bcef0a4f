package gridgraph

// Components finds all contiguous regions of open (non-wall) cells under
// 4-connectivity. Each component is a slice of row-major indices in BFS
// order; components are listed in row-major order of their first cell.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int
	buf := make([]int, 0, len(neighborOffsets))

	for i0 := range g.nodes {
		if g.nodes[i0].IsWall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = g.NeighborIndices(queue[qi], buf)
			for _, v := range buf {
				if g.nodes[v].IsWall || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether a and b are open cells of the same component.
// A wall endpoint is never connected, not even to itself.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.IsWall(a) || g.IsWall(b) {
		return false
	}
	ia, ib := g.Index(a), g.Index(b)
	for _, comp := range g.Components() {
		inA, inB := false, false
		for _, idx := range comp {
			inA = inA || idx == ia
			inB = inB || idx == ib
		}
		if inA || inB {
			return inA && inB
		}
	}
	return false
}
