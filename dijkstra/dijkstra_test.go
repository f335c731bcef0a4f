// Package dijkstra_test contains unit tests for the grid Dijkstra engine:
// validation, path optimality on open and walled boards, trace invariants,
// and the reset/re-entry contract of the search state.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// run executes Dijkstra on a fresh state and returns trace and path.
func run(t *testing.T, g *gridgraph.Grid) ([]gridgraph.Coord, []gridgraph.Coord) {
	t.Helper()
	st := search.NewState(g)
	trace, err := dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	return trace, search.ReconstructPath(st, g.Finish())
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_InvalidInputs(t *testing.T) {
	g, err := gridgraph.New(2, 2, gridgraph.Coord{}, gridgraph.Coord{Row: 1, Col: 1})
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra(nil, search.NewState(g), g.Start(), g.Finish())
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = dijkstra.Dijkstra(g, nil, g.Start(), g.Finish())
	assert.ErrorIs(t, err, search.ErrNilState)

	_, err = dijkstra.Dijkstra(g, search.NewState(g), g.Start(), gridgraph.Coord{Row: 9, Col: 9})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Optimality on open boards
// ------------------------------------------------------------------------

func TestDijkstra_OpenGridManhattan(t *testing.T) {
	cases := []struct {
		rows, cols    int
		start, finish gridgraph.Coord
	}{
		{1, 1, gridgraph.Coord{}, gridgraph.Coord{}},
		{1, 5, gridgraph.Coord{}, gridgraph.Coord{Row: 0, Col: 4}},
		{5, 5, gridgraph.Coord{Row: 4, Col: 4}, gridgraph.Coord{}},
		{6, 9, gridgraph.Coord{Row: 2, Col: 7}, gridgraph.Coord{Row: 5, Col: 1}},
		{15, 40, gridgraph.Coord{Row: 7, Col: 3}, gridgraph.Coord{Row: 0, Col: 38}},
	}
	for _, tc := range cases {
		g, err := gridgraph.New(tc.rows, tc.cols, tc.start, tc.finish)
		require.NoError(t, err)

		_, path := run(t, g)
		want := abs(tc.start.Row-tc.finish.Row) + abs(tc.start.Col-tc.finish.Col) + 1
		assert.Len(t, path, want, "%dx%d %v→%v", tc.rows, tc.cols, tc.start, tc.finish)
		assert.Equal(t, tc.start, path[0])
		assert.Equal(t, tc.finish, path[len(path)-1])
	}
}

func TestDijkstra_ReferenceBoard(t *testing.T) {
	g, err := gridgraph.New(15, 40, gridgraph.Coord{}, gridgraph.Coord{Row: 14, Col: 39})
	require.NoError(t, err)

	trace, path := run(t, g)
	// 14+39 steps, 54 cells
	assert.Len(t, path, 54)
	assert.Equal(t, g.Finish(), trace[len(trace)-1])
}

// ------------------------------------------------------------------------
// 3. Trace invariants
// ------------------------------------------------------------------------

func TestDijkstra_TraceOrderOnCorridor(t *testing.T) {
	g, err := gridgraph.Parse([]string{"S...F"})
	require.NoError(t, err)

	trace, path := run(t, g)
	want := []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	assert.Equal(t, want, trace)
	assert.Equal(t, want, path)
}

func TestDijkstra_TraceSkipsWallsAndDuplicates(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"S.#....",
		".##.##.",
		"...#..F",
	})
	require.NoError(t, err)

	trace, path := run(t, g)
	seen := make(map[gridgraph.Coord]bool, len(trace))
	for _, c := range trace {
		assert.False(t, g.IsWall(c), "wall %v in trace", c)
		assert.False(t, seen[c], "duplicate %v in trace", c)
		seen[c] = true
	}
	for _, c := range path {
		assert.False(t, g.IsWall(c), "wall %v on path", c)
	}
}

func TestDijkstra_OnVisitMatchesTrace(t *testing.T) {
	g, err := gridgraph.New(4, 6, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 3, Col: 5})
	require.NoError(t, err)

	var hooked []gridgraph.Coord
	trace, err := dijkstra.Dijkstra(g, search.NewState(g), g.Start(), g.Finish(),
		search.WithOnVisit(func(c gridgraph.Coord) { hooked = append(hooked, c) }))
	require.NoError(t, err)
	assert.Equal(t, trace, hooked)
}

// ------------------------------------------------------------------------
// 4. No-path outcomes
// ------------------------------------------------------------------------

func TestDijkstra_EnclosedFinish(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"S.....",
		"...#..",
		"..#F#.",
		"...#..",
		"......",
	})
	require.NoError(t, err)

	trace, path := run(t, g)
	assert.LessOrEqual(t, len(path), 1)
	assert.NotContains(t, trace, g.Finish())
	// every open cell outside the box is finalized before the heap empties
	assert.Len(t, trace, g.Len()-g.WallCount()-1)
}

func TestDijkstra_WalledStart(t *testing.T) {
	g, err := gridgraph.Parse([]string{"S..F"})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(g.Start(), true))

	trace, path := run(t, g)
	assert.Empty(t, trace)
	assert.Equal(t, []gridgraph.Coord{g.Finish()}, path)
}

func TestDijkstra_StartIsFinish(t *testing.T) {
	at := gridgraph.Coord{Row: 2, Col: 2}
	g, err := gridgraph.New(5, 5, at, at)
	require.NoError(t, err)

	trace, path := run(t, g)
	assert.Equal(t, []gridgraph.Coord{at}, trace)
	assert.Equal(t, []gridgraph.Coord{at}, path)
}

// ------------------------------------------------------------------------
// 5. State reuse
// ------------------------------------------------------------------------

func TestDijkstra_ResetBetweenRuns(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"S..#....",
		".#.#.##.",
		".#...#.F",
	})
	require.NoError(t, err)
	st := search.NewState(g)

	first, err := dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	firstPath := search.ReconstructPath(st, g.Finish())

	st.Reset()
	second, err := dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstPath, search.ReconstructPath(st, g.Finish()))
}

func TestDijkstra_RawReentryShortCircuits(t *testing.T) {
	g, err := gridgraph.New(3, 3, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	st := search.NewState(g)

	_, err = dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
	require.NoError(t, err)

	// Visited flags from the first run are trusted: the start is skipped.
	again, err := dijkstra.Dijkstra(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, []gridgraph.Coord{g.Finish()}, search.ReconstructPath(st, g.Finish()))
}
