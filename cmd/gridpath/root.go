package main

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/logger"
	"github.com/katalvlaran/gridpath/visualizer"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	log      *slog.Logger
	closer   io.Closer
	registry *prometheus.Registry
	vis      *visualizer.Visualizer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on a walled grid with Dijkstra, Bellman-Ford and A*",
		Long: `gridpath builds a rows×cols board, optionally with walls, runs one or all
of the search engines from the start cell to the finish cell and prints the
visited cells, the shortest path and its cost.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (defaults to $"+config.ConfigEnvVar+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(a), newCompareCmd(a), newLayoutCmd(a))
	return root
}

// setup loads configuration and builds the logger and visualizer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configPath != "" {
		opts = append(opts, config.WithFile(a.configPath))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, log, closer

	a.registry = prometheus.NewRegistry()
	a.vis = visualizer.New(
		visualizer.WithLogger(log),
		visualizer.WithMetrics(visualizer.NewMetrics(a.registry, cfg.Metrics.Namespace)),
	)
	log.Debug("gridpath: configured",
		slog.String("command", cmd.Name()),
		slog.Int("rows", cfg.Grid.Rows),
		slog.Int("cols", cfg.Grid.Cols),
		slog.String("algorithm", cfg.Search.Algorithm))
	return nil
}
