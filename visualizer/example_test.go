package visualizer_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/visualizer"
)

// ExampleVisualizer_Reduce walks the board lifecycle: draw a wall, run the
// selected engine, then read the published result.
func ExampleVisualizer_Reduce() {
	v := visualizer.New(visualizer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctx := context.Background()

	s, _ := visualizer.NewState(3, 4, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 3}, visualizer.Dijkstra)
	for _, a := range []visualizer.Action{
		visualizer.ToggleWall{At: gridgraph.Coord{Row: 0, Col: 2}},
		visualizer.ToggleWall{At: gridgraph.Coord{Row: 1, Col: 2}},
		visualizer.SelectAlgorithm{Algorithm: visualizer.AStar},
		visualizer.Visualize{},
	} {
		var err error
		if s, err = v.Reduce(ctx, s, a); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Print(s.Grid)
	fmt.Println(s.Phase)
	fmt.Println(s.Result.Path)
	fmt.Println(s.Result.Summary())

	// Output:
	// S.#F
	// ..#.
	// ....
	// results-available
	// [0,0 0,1 1,1 2,1 2,2 2,3 1,3 0,3]
	// The cost of the shortest path is 8.
}

// ExampleTimeline prints the reveal schedule of a short corridor run.
func ExampleTimeline() {
	g, _ := gridgraph.Parse([]string{"S.F"})
	res, _ := visualizer.Search(visualizer.Dijkstra, g)

	for _, f := range visualizer.Timeline(res, visualizer.DefaultAnimation()) {
		if f.Kind == visualizer.FrameCost {
			fmt.Printf("%v %s\n", f.At, f.Kind)
			continue
		}
		fmt.Printf("%v %s %s\n", f.At, f.Kind, f.Cell)
	}

	// Output:
	// 0s visit 0,0
	// 10ms visit 0,1
	// 20ms visit 0,2
	// 30ms path 0,0
	// 50ms path 0,1
	// 70ms path 0,2
	// 570ms cost
}
