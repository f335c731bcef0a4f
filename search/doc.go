// Package search holds what the grid shortest-path engines share: the per-run
// search state, the functional options, input validation, and the path
// reconstructor.
//
// Overview:
//
//   - A State maps every cell of a gridgraph.Grid to a NodeState: best-known
//     cost (Distance, also A*'s g), A*'s F = g + h, a Visited flag and a
//     back-link Prev stored as a row-major index. Search data never lives on
//     gridgraph.Node, so one committed grid can be searched many times.
//   - NewState returns an exhaustively reset table; Reset restores every
//     sentinel. Reusing a State without Reset is the caller's choice, and
//     engines document what they do with stale entries (see dijkstra).
//   - ReconstructPath walks Prev links from the finish back to a cell with
//     no predecessor. A result of length ≤ 1 means "no path" to callers.
//
// Options:
//
//   - WithLogger(*slog.Logger): diagnostics sink (default slog.Default()).
//   - WithOnVisit(func(gridgraph.Coord)): called each time a cell joins the
//     visitation trace, in trace order.
//
// Errors:
//
//   - *InvalidGridError wraps ErrNilGrid, ErrNilState, ErrStateMismatch or
//     gridgraph.ErrOutOfBounds when Validate rejects the inputs of a run.
//
// Thread safety:
//
//   - A State belongs to one run at a time. Engines do not lock; never share
//     a State between concurrent searches.
package search
