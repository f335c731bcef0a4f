package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/visualizer"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		board       boardFlags
		algorithm   string
		animate     bool
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm and print the board, cost and timing",
		Example: `  gridpath run --algorithm astar --wall 3,4 --wall 4,4
  gridpath run --layout maze.txt --animate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := a.cfg.Search.Algorithm
			if algorithm != "" {
				name = algorithm
			}
			alg, err := visualizer.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			g, err := board.grid(a)
			if err != nil {
				return err
			}

			s, err := visualizer.StateFromGrid(g, alg)
			if err != nil {
				return err
			}
			s, err = a.vis.Reduce(cmd.Context(), s, visualizer.Visualize{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := render.New(out)
			if animate {
				anim := visualizer.Animation{
					VisitStep: a.cfg.Animation.VisitStep,
					PathStep:  a.cfg.Animation.PathStep,
					CostDelay: a.cfg.Animation.CostDelay,
				}
				frames := visualizer.Timeline(s.Result, anim)
				if err := r.Animate(cmd.Context(), out, s.Grid, s.Result, frames, render.SleepContext); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintln(out, r.Result(s.Grid, s.Result)); err != nil {
				return err
			}

			if showMetrics {
				return writeMetrics(out, a.registry)
			}
			return nil
		},
	}
	board.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "dijkstra, bellman-ford or astar (default from config)")
	cmd.Flags().BoolVar(&animate, "animate", false, "replay the search at the configured animation pace")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the run metrics in prometheus text format")
	return cmd
}

// writeMetrics dumps every gathered family in the text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
