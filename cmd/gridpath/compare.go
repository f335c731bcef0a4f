package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/render"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		board       boardFlags
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same board and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := board.grid(a)
			if err != nil {
				return err
			}
			results, err := a.vis.Compare(cmd.Context(), g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := render.New(out)
			if _, err := fmt.Fprintln(out, r.Board(g, nil, results[0].Path)); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, r.Summary(results[0])); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, r.Comparison(results)); err != nil {
				return err
			}
			ref, err := bfs.BFS(g, g.Start(), bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			if d, ok := ref.DepthOf(g.Finish()); ok {
				_, err = fmt.Fprintf(out, "Reference distance (BFS): %d steps.\n", d)
			} else {
				_, err = fmt.Fprintln(out, "Reference distance (BFS): unreachable.")
			}
			if err != nil {
				return err
			}
			if showMetrics {
				return writeMetrics(out, a.registry)
			}
			return nil
		},
	}
	board.register(cmd)
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the run metrics in prometheus text format")
	return cmd
}
