/*
 * gen-layout runs a force-simulation on the graph received on stdin in json
 * format and writes the graph with node positions to stdout
 */
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/suxatcode/force-layout/internal/app"
	"github.com/suxatcode/force-layout/internal/config"
	"github.com/suxatcode/force-layout/internal/controller"
)

var (
	configFile  string
	previous    string
	plot        bool
	snapshot    string
	invertColor bool
	timeout     time.Duration
	maxTicks    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gen-layout",
		Short:        "compute a force-directed layout of a json graph",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         genLayout,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "layout preset (yaml)")
	rootCmd.Flags().StringVar(&previous, "previous", "", "graph laid out earlier (json), its nodes keep their position")
	rootCmd.Flags().BoolVar(&plot, "plot", false, "plot the kinetic energy per tick to stderr")
	rootCmd.Flags().StringVar(&snapshot, "snapshot", "", "write a png image of the layout")
	rootCmd.Flags().BoolVar(&invertColor, "invert-color", false, "draw the snapshot white on black")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "bound the layout computation, overrides LAYOUT_TIMEOUT")
	rootCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "bound the number of ticks, overrides LAYOUT_MAX_TICKS")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func genLayout(cmd *cobra.Command, args []string) error {
	conf, err := config.GetEnvConfig()
	if err != nil {
		return err
	}
	app.SetupLogging(conf, os.Stderr)
	if cmd.Flags().Changed("timeout") {
		conf.Timeout = timeout
	}
	if cmd.Flags().Changed("max-ticks") {
		conf.MaxTicks = maxTicks
	}
	layoutConf := config.DefaultLayoutConfig()
	if configFile != "" {
		layoutConf, err = config.LoadLayoutConfig(configFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to load layout config")
			return err
		}
	}
	opts := app.Options{Snapshot: snapshot, InvertColor: invertColor}
	if plot {
		opts.Plot = os.Stderr
	}
	if previous != "" {
		file, err := os.Open(previous)
		if err != nil {
			log.Error().Err(err).Msg("failed to open previous graph")
			return err
		}
		defer file.Close()
		opts.Previous = file
	}
	ctx := log.Logger.WithContext(cmd.Context())
	layouter := controller.NewLayouter(layoutConf, conf.MaxTicks)
	if err := app.Run(ctx, conf, layouter, os.Stdin, os.Stdout, opts); err != nil {
		log.Error().Err(err).Msg("layout failed")
		return err
	}
	return nil
}
