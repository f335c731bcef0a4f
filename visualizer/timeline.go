package visualizer

import (
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FrameKind tells the presenter what a Frame reveals.
type FrameKind int

const (
	FrameVisit FrameKind = iota // a visited cell
	FramePath                   // a cell of the shortest path
	FrameCost                   // the cost line; Cell is unused
)

func (k FrameKind) String() string {
	switch k {
	case FrameVisit:
		return "visit"
	case FramePath:
		return "path"
	case FrameCost:
		return "cost"
	}
	return "unknown"
}

// Frame is one scheduled reveal, At after the run was handed over.
type Frame struct {
	At   time.Duration
	Kind FrameKind
	Cell gridgraph.Coord
}

// Animation holds the reveal pacing.
type Animation struct {
	VisitStep time.Duration // gap between visited cells
	PathStep  time.Duration // gap between path cells
	CostDelay time.Duration // pause between the last path cell and the cost line
}

// DefaultAnimation returns 10ms per visit, 20ms per path cell and a 500ms
// pause before the cost line.
func DefaultAnimation() Animation {
	return Animation{
		VisitStep: 10 * time.Millisecond,
		PathStep:  20 * time.Millisecond,
		CostDelay: 500 * time.Millisecond,
	}
}

// Timeline schedules res for display: visit i at VisitStep·i; the path
// starts at VisitStep·len(Visited) with cell j at PathStep·j on top; the cost
// line follows the last path cell after CostDelay. Frames are returned in
// non-decreasing At order.
func Timeline(res *Result, anim Animation) []Frame {
	frames := make([]Frame, 0, len(res.Visited)+len(res.Path)+1)
	for i, c := range res.Visited {
		frames = append(frames, Frame{At: anim.VisitStep * time.Duration(i), Kind: FrameVisit, Cell: c})
	}

	pathStart := anim.VisitStep * time.Duration(len(res.Visited))
	last := 0
	for j, c := range res.Path {
		frames = append(frames, Frame{At: pathStart + anim.PathStep*time.Duration(j), Kind: FramePath, Cell: c})
		last = j
	}
	frames = append(frames, Frame{At: pathStart + anim.PathStep*time.Duration(last) + anim.CostDelay, Kind: FrameCost})

	return frames
}

// Duration returns the At of the final frame, or 0 for no frames.
func Duration(frames []Frame) time.Duration {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].At
}
