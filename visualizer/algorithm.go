package visualizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bellmanford"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownAlgorithm is returned for names or values outside the registry.
var ErrUnknownAlgorithm = errors.New("visualizer: unknown algorithm")

// Algorithm selects a search engine. The zero value is Dijkstra.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	BellmanFord
	AStar
)

// Engine is the common signature of the search engines.
type Engine func(g *gridgraph.Grid, st *search.State, start, finish gridgraph.Coord, opts ...search.Option) ([]gridgraph.Coord, error)

var engines = map[Algorithm]Engine{
	Dijkstra:    dijkstra.Dijkstra,
	BellmanFord: bellmanford.BellmanFord,
	AStar:       astar.AStar,
}

// Algorithms returns every registered algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, BellmanFord, AStar}
}

// String returns the canonical selector name.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title returns the menu label.
func (a Algorithm) Title() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case BellmanFord:
		return "Bellman-Ford"
	case AStar:
		return "A*"
	}
	return a.String()
}

// Valid reports whether a names a registered engine.
func (a Algorithm) Valid() bool {
	_, ok := engines[a]
	return ok
}

// Engine returns the search function registered for a.
func (a Algorithm) Engine() (Engine, error) {
	e, ok := engines[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return e, nil
}

// ParseAlgorithm maps a selector name to an Algorithm. Matching ignores case
// and surrounding spaces; "a*" and "bellmanford" are accepted aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return Dijkstra, nil
	case "bellman-ford", "bellmanford":
		return BellmanFord, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
