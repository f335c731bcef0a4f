package visualizer_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/visualizer"
)

func spanAttr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestVisualize_Span(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	v := visualizer.New(visualizer.WithTracerProvider(tp), visualizer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	g, err := gridgraph.Parse([]string{"S...F"})
	require.NoError(t, err)
	res, err := v.Visualize(context.Background(), visualizer.AStar, g)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Visualizer.Visualize", spans[0].Name())

	alg, ok := spanAttr(spans[0].Attributes(), "search.algorithm")
	require.True(t, ok)
	assert.Equal(t, "astar", alg.AsString())

	cost, ok := spanAttr(spans[0].Attributes(), "search.cost")
	require.True(t, ok)
	assert.Equal(t, int64(5), cost.AsInt64())

	id, ok := spanAttr(spans[0].Attributes(), "search.run_id")
	require.True(t, ok)
	assert.Equal(t, res.RunID, id.AsString())
}

func TestVisualize_ErrorSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	v := visualizer.New(visualizer.WithTracerProvider(tp), visualizer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := v.Visualize(context.Background(), visualizer.Dijkstra, nil)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestVisualize_LogsRun(t *testing.T) {
	var buf bytes.Buffer
	v := visualizer.New(visualizer.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	g, err := gridgraph.Parse([]string{"S.#", "..F"})
	require.NoError(t, err)
	_, err = v.Visualize(context.Background(), visualizer.BellmanFord, g)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"visualizer: search finished"`)
	assert.Contains(t, out, `"algorithm":"bellman-ford"`)
	assert.Contains(t, out, `"cost":4`)
}

func TestCompare(t *testing.T) {
	v := quietVisualizer()
	g, err := gridgraph.Parse([]string{
		"S....#....",
		".###.#.##.",
		"...#...#.F",
	})
	require.NoError(t, err)
	snapshot := g.String()

	results, err := v.Compare(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, alg := range visualizer.Algorithms() {
		assert.Equal(t, alg, results[i].Algorithm)
		assert.Equal(t, results[0].Cost, results[i].Cost, alg)
	}
	assert.LessOrEqual(t, len(results[2].Visited), len(results[0].Visited))
	assert.Equal(t, snapshot, g.String(), "Compare mutated the grid")
}

func TestCompare_NilGrid(t *testing.T) {
	_, err := quietVisualizer().Compare(context.Background(), nil)
	assert.Error(t, err)
}
