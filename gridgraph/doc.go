// Package gridgraph models the rectangular, uniform-cost grid that the
// shortest-path engines of gridpath search over.
//
// What:
//
//   - Grid is a rows×cols row-major collection of Node records. A Node only
//     carries identity (Row, Col) and role flags (IsStart, IsFinish, IsWall);
//     per-run search data lives in package search, never on the Node.
//   - Exactly one start and one finish exist, both within bounds. They may
//     coincide, in which case a single cell carries both flags.
//   - Walls may be toggled on any cell, start and finish included. Searches
//     decide how a walled endpoint behaves.
//   - Neighbors resolves the in-bound orthogonal neighbours of a cell in the
//     fixed order up, down, left, right. It never filters walls.
//
// Lifecycle:
//
//   - New / Rebuild: fresh nodes, walls cleared (start or finish changed).
//   - Clone: copy preserving the wall layout (refresh before a run, or
//     copy-on-write before a wall toggle).
//
// Layouts:
//
//	S . . #
//	. # . #
//	. # . F
//
// Parse reads the ASCII form above ('.' open, '#' wall, 'S' start,
// 'F' finish, '*' start and finish on one cell); String writes it back.
//
// Complexity:
//
//   - New, Clone, Parse, String: O(rows×cols) time and memory.
//   - Neighbors, InBounds, Index, Coordinate: O(1).
//   - Components: O(rows×cols×4) time, O(rows×cols) memory.
//
// Errors:
//
//   - ErrEmptyGrid: rows < 1 or cols < 1.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrUnknownCell: unsupported layout rune.
//   - ErrMissingEndpoint / ErrDuplicateEndpoint: layout without exactly one
//     start and one finish.
package gridgraph
