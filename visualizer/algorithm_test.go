package visualizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/visualizer"
)

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want visualizer.Algorithm
	}{
		{"dijkstra", visualizer.Dijkstra},
		{"  Dijkstra ", visualizer.Dijkstra},
		{"bellman-ford", visualizer.BellmanFord},
		{"BellmanFord", visualizer.BellmanFord},
		{"astar", visualizer.AStar},
		{"A*", visualizer.AStar},
	}
	for _, tc := range cases {
		got, err := visualizer.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "bfs", "a-star", "bellman ford"} {
		_, err := visualizer.ParseAlgorithm(bad)
		assert.ErrorIs(t, err, visualizer.ErrUnknownAlgorithm, bad)
	}
}

func TestAlgorithm_RoundTrip(t *testing.T) {
	for _, alg := range visualizer.Algorithms() {
		assert.True(t, alg.Valid())
		parsed, err := visualizer.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)

		engine, err := alg.Engine()
		require.NoError(t, err)
		assert.NotNil(t, engine)
	}
	assert.Equal(t, "A*", visualizer.AStar.Title())
	assert.Equal(t, "Bellman-Ford", visualizer.BellmanFord.Title())
}

func TestAlgorithm_Unknown(t *testing.T) {
	bogus := visualizer.Algorithm(42)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "Algorithm(42)", bogus.String())

	_, err := bogus.Engine()
	assert.ErrorIs(t, err, visualizer.ErrUnknownAlgorithm)
}
