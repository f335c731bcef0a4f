// Package bellmanford implements the Bellman-Ford shortest-path search on a
// uniform-cost, 4-connected gridgraph.Grid.
//
// Overview:
//
//   - Up to V−1 passes (V = rows×cols). Each pass scans every cell in
//     row-major order and, for each reached non-wall cell, relaxes its
//     non-wall neighbours in place: d(u)+1 < d(v) updates d(v) and Prev(v).
//   - After each pass, every reached, non-wall, not yet visited cell is
//     marked visited and appended to the trace in row-major order. The trace
//     is therefore batched by the pass a cell was reached in, which is what
//     the progress display animates.
//   - A pass without updates ends the loop early (fixed point). Reaching the
//     finish does not: the search always settles the whole reachable region.
//   - A final scan looks for edges that could still be relaxed and logs a
//     negative-cycle warning through Options.Logger. With unit weights it
//     never fires.
//
// State contract:
//
//   - BellmanFord resets Distance, F, Visited and Prev of every cell, so
//     re-running on a used State gives the same result.
//   - Walls are never marked visited, a walled start included.
//
// Complexity:
//
//   - Time:  O(V·E) worst case, O(V·L) in practice with L the number of
//     passes until the fixed point.
//   - Space: O(1) beyond the State and the trace.
package bellmanford
