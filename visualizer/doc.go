// Package visualizer orchestrates the grid search engines for a
// presentation collaborator.
//
// It owns three concerns:
//
//   - Running one algorithm on a committed grid (Search, Visualizer.Visualize):
//     a fresh search.State per run, path reconstruction, wall-clock timing
//     and the cost convention of the board (Cost = len(Path), a path exists
//     only when Cost > 1).
//   - The board lifecycle as a reducer: Visualizer.Reduce folds an Action
//     into a State and returns the next State. Grids inside a State are
//     never mutated; wall toggles clone first.
//   - The deferred presentation schedule (Timeline): when each visited
//     cell, each path cell and the cost line are revealed.
//
// Runs are observed through slog, optional prometheus Metrics and an
// OpenTelemetry span per run.
package visualizer
