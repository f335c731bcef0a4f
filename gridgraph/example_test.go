// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed up, down, left, right resolution
// order, clipped at the board edge.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.New(3, 3, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})

	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 1, Col: 1}))
	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 0, Col: 2}))

	// Output:
	// [0,1 2,1 1,0 1,2]
	// [1,2 0,1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse builds a small board with a wall column and prints it back.
func ExampleParse() {
	g, err := gridgraph.Parse([]string{
		"S . # .",
		". . # .",
		". . . F",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d start=%s finish=%s walls=%d\n", g.Rows, g.Cols, g.Start(), g.Finish(), g.WallCount())
	fmt.Print(g)

	// Output:
	// 3x4 start=0,0 finish=2,3 walls=2
	// S.#.
	// ..#.
	// ...F
}
