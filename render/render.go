// Package render draws boards, traces and paths for the terminal with
// lipgloss. Colours degrade to plain text when the output is not a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/visualizer"
)

// Palette
var (
	ColorStart   = lipgloss.Color("#2CD7C7")
	ColorFinish  = lipgloss.Color("#E74C3C")
	ColorWall    = lipgloss.Color("#2C4A54")
	ColorVisited = lipgloss.Color("#20B9B4")
	ColorPath    = lipgloss.Color("#F4D03F")
	ColorMuted   = lipgloss.Color("#6C7A89")
)

// Cell glyphs. Open, wall, start and finish match the layout format.
const (
	GlyphOpen    = "."
	GlyphWall    = "#"
	GlyphStart   = "S"
	GlyphFinish  = "F"
	GlyphVisited = "o"
	GlyphPath    = "*"
)

// Styles groups the styles a Renderer applies.
type Styles struct {
	Open, Wall, Start, Finish, Visited, Path lipgloss.Style

	Board   lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
}

// Renderer renders board views for one output stream.
type Renderer struct {
	styles Styles
}

// New returns a Renderer whose colour profile is detected from w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{styles: newStyles(r)}
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Open:    r.NewStyle().Foreground(ColorMuted),
		Wall:    r.NewStyle().Foreground(ColorWall).Bold(true),
		Start:   r.NewStyle().Foreground(ColorStart).Bold(true),
		Finish:  r.NewStyle().Foreground(ColorFinish).Bold(true),
		Visited: r.NewStyle().Foreground(ColorVisited),
		Path:    r.NewStyle().Foreground(ColorPath).Bold(true),

		Board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWall).
			Padding(0, 1),
		Title:   r.NewStyle().Bold(true).Foreground(ColorStart),
		Success: r.NewStyle().Foreground(ColorStart),
		Failure: r.NewStyle().Foreground(ColorFinish),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// cellKind is the overlay of a cell; path wins over visited.
type cellKind int

const (
	kindOpen cellKind = iota
	kindVisited
	kindPath
)

// Board draws g with visited and path overlays inside a rounded frame.
// Endpoints and walls are always drawn on top.
func (r *Renderer) Board(g *gridgraph.Grid, visited, path []gridgraph.Coord) string {
	kinds := make([]cellKind, g.Len())
	for _, c := range visited {
		if g.InBounds(c) {
			kinds[g.Index(c)] = kindVisited
		}
	}
	for _, c := range path {
		if g.InBounds(c) {
			kinds[g.Index(c)] = kindPath
		}
	}

	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			c := gridgraph.Coord{Row: row, Col: col}
			b.WriteString(r.cell(g.Node(c), kinds[g.Index(c)]))
		}
	}
	return r.styles.Board.Render(b.String())
}

func (r *Renderer) cell(n gridgraph.Node, k cellKind) string {
	switch {
	case n.IsStart:
		return r.styles.Start.Render(GlyphStart)
	case n.IsFinish:
		return r.styles.Finish.Render(GlyphFinish)
	case n.IsWall:
		return r.styles.Wall.Render(GlyphWall)
	case k == kindPath:
		return r.styles.Path.Render(GlyphPath)
	case k == kindVisited:
		return r.styles.Visited.Render(GlyphVisited)
	}
	return r.styles.Open.Render(GlyphOpen)
}

// Result draws the board for res followed by the summary and timing lines.
func (r *Renderer) Result(g *gridgraph.Grid, res *visualizer.Result) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(res.Algorithm.Title()),
		r.Board(g, res.Visited, res.Path),
		r.Summary(res),
		r.styles.Muted.Render(res.Timing()),
	)
}

// Summary renders the cost line, highlighted by outcome.
func (r *Renderer) Summary(res *visualizer.Result) string {
	if res.HasPath() {
		return r.styles.Success.Render(res.Summary())
	}
	return r.styles.Failure.Render(res.Summary())
}

// Comparison renders one row per result: algorithm, visited count, cost and
// elapsed time.
func (r *Renderer) Comparison(results []*visualizer.Result) string {
	const format = "%-14s %8s %6s %12s"
	lines := []string{r.styles.Title.Render(fmt.Sprintf(format, "ALGORITHM", "VISITED", "COST", "ELAPSED"))}
	for _, res := range results {
		cost := "-"
		if res.HasPath() {
			cost = fmt.Sprint(res.Cost)
		}
		lines = append(lines, fmt.Sprintf(format,
			res.Algorithm.Title(), fmt.Sprint(len(res.Visited)), cost, res.Elapsed.Round(time.Microsecond)))
	}
	return r.styles.Board.Render(strings.Join(lines, "\n"))
}
