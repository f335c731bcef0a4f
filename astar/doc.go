// Package astar implements A* search on a uniform-cost, 4-connected
// gridgraph.Grid, guided by the Manhattan distance to the finish.
//
// Overview:
//
//   - The open set is a binary min-heap ordered by f = g + h, then by g
//     (ascending), then by insertion order. Each cell is in the open set at
//     most once: a better g found for a queued cell updates its entry in
//     place and restores heap order with heap.Fix.
//   - A popped wall is discarded without being marked visited. Walls are
//     never queued as neighbours, so only a walled start reaches that
//     branch; the check still guards the trace against walls.
//   - A popped open cell is marked visited once, appended to the trace, and
//     the search returns as soon as it is the finish.
//   - Manhattan distance is admissible and consistent on this grid, so the
//     path found is a shortest one and visited cells never improve again.
//
// State contract:
//
//   - AStar resets every cell of the State (Distance, F, Visited, Prev)
//     before searching; re-running on a used State is safe.
//   - After a run, NodeState.Distance holds g and NodeState.F holds g + h for
//     every cell that was queued.
//
// Complexity:
//
//   - Time:  O(V log V) worst case, V = rows×cols.
//   - Space: O(V) for the open set and its position index.
package astar
