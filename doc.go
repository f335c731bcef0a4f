// Package gridpath is a pathfinding playground on a rectangular 4-connected
// board: place walls, pick an engine, and watch the search unfold.
//
// What is inside?
//
//	gridgraph/   — the board: cells, walls, endpoints, neighbours, text layouts
//	search/      — per-run node state, shared errors, options and path tracing
//	dijkstra/    — uniform-cost Dijkstra with a binary heap
//	bellmanford/ — pass-batched Bellman-Ford with negative-cycle detection
//	astar/       — A* with the Manhattan heuristic and decrease-key
//	bfs/         — breadth-first hop distances, the reference for the engines
//	visualizer/  — engine dispatch, results, animation timeline and the
//	               board state reducer (SetStart, ToggleWall, Visualize, …)
//	render/      — terminal rendering and frame-by-frame animation
//	config/      — koanf-backed settings (defaults, YAML file, GRIDPATH_* env)
//	logger/      — slog construction with optional rotating file output
//	cmd/gridpath — the CLI: run, compare, layout
//
// Quick ASCII example:
//
//	S . # F
//	. . # .
//	. . . .
//
// `gridpath run --layout board.txt -a astar --animate` replays the visited
// cells, then the shortest path, then prints its cost.
package gridpath
