package bellmanford_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bellmanford"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func run(t *testing.T, g *gridgraph.Grid) ([]gridgraph.Coord, []gridgraph.Coord) {
	t.Helper()
	st := search.NewState(g)
	trace, err := bellmanford.BellmanFord(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	return trace, search.ReconstructPath(st, g.Finish())
}

func TestBellmanFord_InvalidInputs(t *testing.T) {
	g, err := gridgraph.New(2, 2, gridgraph.Coord{}, gridgraph.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	small, err := gridgraph.New(1, 1, gridgraph.Coord{}, gridgraph.Coord{})
	require.NoError(t, err)

	_, err = bellmanford.BellmanFord(nil, search.NewState(g), g.Start(), g.Finish())
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = bellmanford.BellmanFord(g, search.NewState(small), g.Start(), g.Finish())
	assert.ErrorIs(t, err, search.ErrStateMismatch)
}

func TestBellmanFord_ReferenceBoard(t *testing.T) {
	g, err := gridgraph.New(15, 40, gridgraph.Coord{}, gridgraph.Coord{Row: 14, Col: 39})
	require.NoError(t, err)

	trace, path := run(t, g)
	// 14+39 steps, 54 cells
	assert.Len(t, path, 54)
	// no early exit at the finish: the whole board is reached
	assert.Len(t, trace, g.Len())
}

func TestBellmanFord_OpenGridManhattan(t *testing.T) {
	cases := []struct {
		start, finish gridgraph.Coord
	}{
		{gridgraph.Coord{Row: 4, Col: 6}, gridgraph.Coord{Row: 0, Col: 0}},
		{gridgraph.Coord{Row: 0, Col: 6}, gridgraph.Coord{Row: 4, Col: 0}},
		{gridgraph.Coord{Row: 2, Col: 3}, gridgraph.Coord{Row: 2, Col: 3}},
	}
	for _, tc := range cases {
		g, err := gridgraph.New(5, 7, tc.start, tc.finish)
		require.NoError(t, err)

		_, path := run(t, g)
		dr, dc := tc.start.Row-tc.finish.Row, tc.start.Col-tc.finish.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		assert.Len(t, path, dr+dc+1, "%v→%v", tc.start, tc.finish)
	}
}

// TestBellmanFord_TraceBatchedByPass checks the row-major batching on a
// corridor walked right to left: a left-moving wave needs one pass per step,
// so the trace lists cells by distance.
func TestBellmanFord_TraceBatchedByPass(t *testing.T) {
	g, err := gridgraph.Parse([]string{"F...S"})
	require.NoError(t, err)

	trace, path := run(t, g)
	want := []gridgraph.Coord{{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}
	// pass 1 reaches col 3 (and col 4 is the start): row-major gives 3 then 4
	assert.Equal(t, want, trace)
	assert.Len(t, path, 5)
}

// TestBellmanFord_ForwardSweep checks that a rightward corridor settles in a
// single pass because the row-major scan relaxes in place.
func TestBellmanFord_ForwardSweep(t *testing.T) {
	g, err := gridgraph.Parse([]string{"S...F"})
	require.NoError(t, err)

	var visited []gridgraph.Coord
	trace, err := bellmanford.BellmanFord(g, search.NewState(g), g.Start(), g.Finish(),
		search.WithOnVisit(func(c gridgraph.Coord) { visited = append(visited, c) }))
	require.NoError(t, err)

	want := []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	assert.Equal(t, want, trace)
	assert.Equal(t, want, visited)
}

func TestBellmanFord_EnclosedFinish(t *testing.T) {
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
	assert.Len(t, trace, g.Len()-g.WallCount()-1)
}

func TestBellmanFord_WalledStartNeverVisited(t *testing.T) {
	g, err := gridgraph.Parse([]string{"S..F"})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(g.Start(), true))

	trace, path := run(t, g)
	assert.Empty(t, trace)
	assert.Equal(t, []gridgraph.Coord{g.Finish()}, path)
}

func TestBellmanFord_SingleCell(t *testing.T) {
	g, err := gridgraph.New(1, 1, gridgraph.Coord{}, gridgraph.Coord{})
	require.NoError(t, err)

	// V−1 = 0 passes: nothing is marked, the path is the lone cell.
	trace, path := run(t, g)
	assert.Empty(t, trace)
	assert.Equal(t, []gridgraph.Coord{{}}, path)
}

func TestBellmanFord_RerunIsIdempotent(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"S.#.....",
		"..#.##.#",
		"....#..F",
	})
	require.NoError(t, err)
	st := search.NewState(g)

	first, err := bellmanford.BellmanFord(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	firstPath := search.ReconstructPath(st, g.Finish())

	// raw re-entry: the engine resets the state itself
	second, err := bellmanford.BellmanFord(g, st, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstPath, search.ReconstructPath(st, g.Finish()))
}

func TestBellmanFord_NoWarningOnUnitWeights(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"S..#.",
		".#.#.",
		".#..F",
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = bellmanford.BellmanFord(g, search.NewState(g), g.Start(), g.Finish(), search.WithLogger(logger))
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "negative weight cycle")
}
