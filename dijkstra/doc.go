// Package dijkstra implements Dijkstra's shortest-path search on a uniform
// cost, 4-connected gridgraph.Grid, producing a visitation trace for
// progress display and back-links for path reconstruction.
//
// Overview:
//
//   - Every step costs 1. Walls are never enqueued and never visited; a
//     walled start therefore yields an empty trace.
//   - The frontier is a binary min-heap ordered by distance, ties broken by
//     insertion order, with the lazy decrease-key strategy: an improved cell
//     is pushed again and stale entries are skipped when popped.
//   - A cell joins the trace exactly once, when it is first popped. Visited
//     cells are never relaxed again.
//   - The search stops as soon as the finish is popped, or when the frontier
//     empties (unreachable finish).
//
// State contract:
//
//   - Dijkstra resets Distance, F and Prev of every cell but trusts the
//     Visited flags it is given. Hand it a fresh search.NewState or a
//     State.Reset one; re-entering with a used State skips every cell that
//     is already flagged (an already-visited start gives an empty trace).
//
// Complexity:
//
//   - Time:  O(V log V) with V = rows×cols (E ≤ 4V).
//   - Space: O(V) for the heap under lazy decrease-key.
//
// Errors:
//
//   - *search.InvalidGridError for nil inputs, a State of another size, or
//     endpoints out of bounds.
//
// Example:
//
//	st := search.NewState(g)
//	trace, err := dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := search.ReconstructPath(st, g.Finish())
package dijkstra
