package controller

import (
	"context"
	"math"
	"sync"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/force-layout/internal/config"
	"github.com/suxatcode/force-layout/layout"
)

// Layouter computes node positions for graphs whose nodes are identified by
// their name.
//
//go:generate mockgen -destination layouter_mock.go -package controller . Layouter
type Layouter interface {
	// GetNodePositions assigns node positions from a past Reload. Nodes
	// unknown to that run are placed by a quick simulation in which all known
	// nodes are pinned. If there was no Reload yet, a Reload is performed.
	GetNodePositions(context.Context, *layout.Graph) (layout.Stats, error)
	// Reload re-runs the complete simulation. This is a synchronous call
	// and will take some time.
	Reload(context.Context, *layout.Graph) (layout.Stats, error)
	// Remember replaces the known positions with those of a graph laid out
	// earlier, without running a simulation. Nodes without a position are
	// ignored.
	Remember(context.Context, *layout.Graph) error
}

// NewLayouter returns an implementation of the Layouter interface.
func NewLayouter(conf config.LayoutConfig, maxTicks int) Layouter {
	return NewForceSimulationLayouter(conf, maxTicks)
}

// implements Layouter
// Idea:
//   - run a complete simulation when Reload is called, and
//   - run a quick simulation on GetNodePositions IFF the current layout is
//     missing some node.
type ForceSimulationLayouter struct {
	mu        sync.Mutex
	conf      config.LayoutConfig
	quickConf config.LayoutConfig
	maxTicks  int
	// positions of the last layout, by node name
	positions map[string]vector.Vector
}

// a quick simulation cools from 0.3 down to 0.001 in ~55 ticks
const (
	quickAlphaInit  = 0.3
	quickAlphaDecay = 0.1
)

func NewForceSimulationLayouter(conf config.LayoutConfig, maxTicks int) *ForceSimulationLayouter {
	quickConf := conf
	quickConf.Simulation.AlphaInit = quickAlphaInit
	quickConf.Simulation.AlphaDecay = quickAlphaDecay
	return &ForceSimulationLayouter{
		conf:      conf,
		quickConf: quickConf,
		maxTicks:  maxTicks,
	}
}

func validate(g *layout.Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	names := make(map[string]int, len(g.Nodes))
	for i, node := range g.Nodes {
		if j, exists := names[node.Name]; exists {
			return errors.Errorf("node %d: name %q already used by node %d", i, node.Name, j)
		}
		names[node.Name] = i
	}
	return nil
}

func (l *ForceSimulationLayouter) Reload(ctx context.Context, g *layout.Graph) (layout.Stats, error) {
	if err := validate(g); err != nil {
		return layout.Stats{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reload(ctx, g), nil
}

func (l *ForceSimulationLayouter) reload(ctx context.Context, g *layout.Graph) layout.Stats {
	nodes := g.SimulationNodes()
	stats := l.run(ctx, l.conf, g, nodes)
	l.positions = make(map[string]vector.Vector, len(nodes))
	l.store(g, nodes)
	log.Ctx(ctx).Info().Msgf(
		"graph layout computation finished: stats{nodes: %d, iterations: %d, time: %d ms}",
		len(nodes),
		stats.Iterations,
		stats.TotalTime.Milliseconds(),
	)
	return stats
}

func (l *ForceSimulationLayouter) Remember(ctx context.Context, g *layout.Graph) error {
	if err := validate(g); err != nil {
		return err
	}
	positions := make(map[string]vector.Vector, len(g.Nodes))
	for _, node := range g.Nodes {
		if len(node.Pos) == 2 {
			positions[node.Name] = copyPos(node.Pos)
		}
	}
	if len(positions) == 0 {
		return errors.New("graph has no node positions to remember")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.positions = positions
	log.Ctx(ctx).Debug().Msgf("remembered %d node positions", len(positions))
	return nil
}

func (l *ForceSimulationLayouter) GetNodePositions(ctx context.Context, g *layout.Graph) (layout.Stats, error) {
	if err := validate(g); err != nil {
		return layout.Stats{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.positions == nil {
		return l.reload(ctx, g), nil
	}
	missing := l.missingNodes(g)
	if len(missing) == 0 {
		for _, node := range g.Nodes {
			node.Pos = copyPos(l.positions[node.Name])
		}
		return layout.Stats{}, nil
	}
	nodes := g.SimulationNodes()
	for i, node := range g.Nodes {
		if pos, exists := l.positions[node.Name]; exists {
			nodes[i].SetPos(pos)
			nodes[i].Pinned = true
		}
	}
	placeNearNeighbours(g, nodes, missing)
	stats := l.run(ctx, l.quickConf, g, nodes)
	l.store(g, nodes)
	log.Ctx(ctx).Info().Msgf(
		"*quick* graph layout computation finished: stats{new nodes: %d, iterations: %d, time: %d ms}",
		len(missing),
		stats.Iterations,
		stats.TotalTime.Milliseconds(),
	)
	return stats, nil
}

func (l *ForceSimulationLayouter) run(ctx context.Context, conf config.LayoutConfig, g *layout.Graph, nodes []layout.Node) layout.Stats {
	s := layout.NewSimulationWithConfig(nodes, conf.SimulationConfig())
	for _, f := range conf.Forces(g) {
		s.AddForce(f)
	}
	return s.ComputeLayout(ctx, l.maxTicks)
}

// store remembers the positions of nodes and writes them into g. Pinned
// state of g is left as it was.
func (l *ForceSimulationLayouter) store(g *layout.Graph, nodes []layout.Node) {
	g.UpdatePositions(nodes)
	for _, node := range g.Nodes {
		if len(node.Pos) == 2 {
			l.positions[node.Name] = copyPos(node.Pos)
		}
	}
}

func copyPos(pos vector.Vector) vector.Vector {
	if len(pos) < 2 {
		return nil
	}
	return vector.Vector{pos.X(), pos.Y()}
}

func (l *ForceSimulationLayouter) missingNodes(g *layout.Graph) []int {
	missing := []int{}
	for i, node := range g.Nodes {
		if _, exists := l.positions[node.Name]; !exists {
			missing = append(missing, i)
		}
	}
	return missing
}

// placeNearNeighbours puts every new node without a position next to the
// first already placed node it shares an edge with. New nodes without such a
// neighbour are left to the simulation's initial placement.
func placeNearNeighbours(g *layout.Graph, nodes []layout.Node, missing []int) {
	isMissing := make(map[int]bool, len(missing))
	for _, i := range missing {
		isMissing[i] = true
	}
	for k, i := range missing {
		if !math.IsNaN(nodes[i].X) {
			continue
		}
		for _, edge := range g.Edges {
			neighbour := -1
			if edge.Source == i && !isMissing[edge.Target] {
				neighbour = edge.Target
			} else if edge.Target == i && !isMissing[edge.Source] {
				neighbour = edge.Source
			}
			if neighbour < 0 {
				continue
			}
			angle := float64(k) * math.Pi * (3 - math.Sqrt(5))
			offset := vector.Vector{math.Cos(angle), math.Sin(angle)}.Scale(neighbourOffset)
			nodes[i].SetPos(nodes[neighbour].Pos().Add(offset))
			break
		}
	}
}

// distance of a new node to the neighbour it is placed next to
const neighbourOffset = 10.0
