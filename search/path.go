package search

import "github.com/katalvlaran/gridpath/gridgraph"

// ReconstructPath walks Prev links from finish until a cell without
// predecessor and returns the cells from that root to finish.
//
// After a completed search the root is the start, so the result is the
// shortest path. If finish was never reached the result is [finish]; the
// start itself (start == finish) also yields a single cell. Callers treat
// len ≤ 1 as "no path".
//
// The walk is bounded by the table size, so a corrupted, cyclic Prev chain
// cannot loop forever.
// Complexity: O(path length).
func ReconstructPath(s *State, finish gridgraph.Coord) []gridgraph.Coord {
	var rev []gridgraph.Coord
	cur := finish
	for steps := 0; steps < len(s.nodes); steps++ {
		rev = append(rev, cur)
		prev, ok := s.Previous(cur)
		if !ok {
			break
		}
		cur = prev
	}

	// reverse to get root → finish
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
