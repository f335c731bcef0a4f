package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLayoutCmd(a *app) *cobra.Command {
	var board boardFlags
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print an ASCII layout of the configured board, ready to edit for --layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := board.grid(a)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g)
			return err
		},
	}
	board.register(cmd)
	return cmd
}
