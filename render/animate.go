package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/visualizer"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the real-time Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Animate replays frames onto w, redrawing the board at each frame time.
// It returns ctx.Err() if cancelled before the cost line.
func (r *Renderer) Animate(ctx context.Context, w io.Writer, g *gridgraph.Grid, res *visualizer.Result, frames []visualizer.Frame, sleep Sleeper) error {
	if sleep == nil {
		sleep = SleepContext
	}
	var (
		visited []gridgraph.Coord
		path    []gridgraph.Coord
		now     time.Duration
	)
	for _, f := range frames {
		if err := sleep(ctx, f.At-now); err != nil {
			return err
		}
		now = f.At

		switch f.Kind {
		case visualizer.FrameVisit:
			visited = append(visited, f.Cell)
		case visualizer.FramePath:
			path = append(path, f.Cell)
		case visualizer.FrameCost:
			_, err := fmt.Fprintf(w, "%s%s\n", clearScreen, r.Result(g, res))
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", clearScreen, r.Board(g, visited, path)); err != nil {
			return err
		}
	}
	return nil
}
