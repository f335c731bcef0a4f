// Package bfs runs breadth-first search over a gridgraph.Grid, returning hop
// distances, parent links and the dequeue order.
//
// Every step on the grid costs 1, so BFS depth equals the shortest-path
// length. The package serves as the independent reference the weighted
// engines (dijkstra, bellmanford, astar) are checked against, and as the
// lower bound printed by `gridpath compare`.
//
// Determinism
//
//	Neighbours are enqueued in the grid's fixed up, down, left, right order,
//	so the visit sequence is reproducible.
//
// Walls
//
//	Walls are never enqueued. A walled start yields an empty Order.
//
// Complexity (V = rows×cols)
//
//   - Time:   O(V)   (each cell enqueued at most once, ≤ 4 neighbours)
//   - Memory: O(V)   (queue, Depth and Parent slices)
//
// Usage
//
//	res, err := bfs.BFS(g, g.Start(), bfs.WithMaxDepth(10))
//	if err != nil {
//	    // ErrGridNil, gridgraph.ErrOutOfBounds, ErrOptionViolation or ctx.Err()
//	}
//	d, ok := res.DepthOf(g.Finish())
package bfs
