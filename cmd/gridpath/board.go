package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// errBadCoord is returned for a --start, --finish or --wall value that is
// not "row,col".
var errBadCoord = errors.New("gridpath: coordinate must be row,col")

// boardFlags are the board inputs shared by run and compare.
type boardFlags struct {
	rows, cols    int
	start, finish string
	layout        string
	walls         []string
}

func (b *boardFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&b.rows, "rows", 0, "board rows (default from config)")
	f.IntVar(&b.cols, "cols", 0, "board columns (default from config)")
	f.StringVar(&b.start, "start", "", "start cell as row,col (default from config)")
	f.StringVar(&b.finish, "finish", "", "finish cell as row,col (default from config)")
	f.StringVar(&b.layout, "layout", "", "read the board from an ASCII layout file (. # S F *)")
	f.StringArrayVar(&b.walls, "wall", nil, "add a wall at row,col (repeatable)")
}

// grid builds the board: the layout file when given, otherwise a fresh grid
// from config overridden by the flags. --wall cells are added on top.
func (b *boardFlags) grid(a *app) (*gridgraph.Grid, error) {
	var (
		g   *gridgraph.Grid
		err error
	)
	if b.layout != "" {
		g, err = readLayout(b.layout)
	} else {
		g, err = b.fresh(a)
	}
	if err != nil {
		return nil, err
	}

	for _, w := range b.walls {
		c, err := parseCoord(w)
		if err != nil {
			return nil, fmt.Errorf("--wall: %w", err)
		}
		if err := g.SetWall(c, true); err != nil {
			return nil, fmt.Errorf("--wall %s: %w", w, err)
		}
	}
	return g, nil
}

func (b *boardFlags) fresh(a *app) (*gridgraph.Grid, error) {
	gc := a.cfg.Grid
	rows, cols := gc.Rows, gc.Cols
	if b.rows > 0 {
		rows = b.rows
	}
	if b.cols > 0 {
		cols = b.cols
	}

	start, finish := gc.Start(), gc.Finish()
	if b.start != "" {
		c, err := parseCoord(b.start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		start = c
	}
	if b.finish != "" {
		c, err := parseCoord(b.finish)
		if err != nil {
			return nil, fmt.Errorf("--finish: %w", err)
		}
		finish = c
	}
	return gridgraph.New(rows, cols, start, finish)
}

func readLayout(path string) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g, err := gridgraph.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return g, nil
}

// parseCoord reads "row,col", spaces allowed.
func parseCoord(s string) (gridgraph.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return gridgraph.Coord{Row: row, Col: col}, nil
}
