package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/force-layout/internal/config"
	"github.com/suxatcode/force-layout/internal/controller"
	"github.com/suxatcode/force-layout/layout"
)

type Options struct {
	// Plot receives a chart of the kinetic energy per tick, nil disables it.
	Plot io.Writer
	// Snapshot is the path of a PNG image of the final layout, empty
	// disables it.
	Snapshot    string
	InvertColor bool
	// Previous is a graph laid out earlier. If set, nodes known from it keep
	// their position and only new nodes are placed.
	Previous io.Reader
}

// Run reads a graph from in, lays it out and writes the graph with
// positions to out.
func Run(ctx context.Context, conf config.Config, layouter controller.Layouter, in io.Reader, out io.Writer, opts Options) error {
	graph, err := DecodeGraph(in)
	if err != nil {
		return err
	}
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}
	stats, err := computeLayout(ctx, layouter, graph, opts.Previous)
	if err != nil {
		return errors.Wrap(err, "failed to compute layout")
	}
	log.Ctx(ctx).Info().Msgf("layout of %d nodes: %d iterations in %s, converged=%t", len(graph.Nodes), stats.Iterations, stats.TotalTime, stats.Converged)
	if opts.Plot != nil && len(stats.KineticEnergy) > 0 {
		if _, err := fmt.Fprintln(opts.Plot, PlotEnergy(stats.KineticEnergy)); err != nil {
			return errors.Wrap(err, "failed to write energy plot")
		}
	}
	if opts.Snapshot != "" {
		if err := WriteSnapshot(opts.Snapshot, graph, opts.InvertColor); err != nil {
			return err
		}
	}
	return errors.Wrap(json.NewEncoder(out).Encode(graph), "failed to encode graph")
}

func computeLayout(ctx context.Context, layouter controller.Layouter, graph *layout.Graph, previous io.Reader) (layout.Stats, error) {
	if previous == nil {
		return layouter.Reload(ctx, graph)
	}
	old, err := DecodeGraph(previous)
	if err != nil {
		return layout.Stats{}, errors.Wrap(err, "previous graph")
	}
	if err := layouter.Remember(ctx, old); err != nil {
		return layout.Stats{}, errors.Wrap(err, "previous graph")
	}
	return layouter.GetNodePositions(ctx, graph)
}
