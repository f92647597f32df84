package layout

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distance(a, b *Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestForceSimulation(t *testing.T) {
	for _, test := range []struct {
		Name       string
		Nodes      []Node
		Forces     []Force
		Assertions func(t *testing.T, nodes []Node)
	}{
		{
			Name:   "repulsion increases separation",
			Nodes:  []Node{{X: 0, Y: 0}, {X: 1, Y: 0}},
			Forces: []Force{ForceManyBody(-30.0)},
			Assertions: func(t *testing.T, nodes []Node) {
				assert.Greater(t, distance(&nodes[0], &nodes[1]), 1.0)
			},
		},
		{
			Name:   "centering contracts distance from target",
			Nodes:  []Node{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}},
			Forces: []Force{ForceCenter(0, 0, 0.1)},
			Assertions: func(t *testing.T, nodes []Node) {
				assert := assert.New(t)
				for i, initial := range []float64{math.Hypot(10, 10), math.Hypot(20, 20), math.Hypot(30, 30)} {
					assert.Less(math.Hypot(nodes[i].X, nodes[i].Y), initial, "node %d", i)
				}
			},
		},
		{
			Name:   "link spring converges toward target distance",
			Nodes:  []Node{{X: 0, Y: 0}, {X: 10, Y: 0}},
			Forces: []Force{ForceLink([]Link{{Source: 0, Target: 1}})},
			Assertions: func(t *testing.T, nodes []Node) {
				assert := assert.New(t)
				final := distance(&nodes[0], &nodes[1])
				assert.Less(math.Abs(final-30), math.Abs(10.0-30))
				assert.InDelta(30.0, final, 0.1)
			},
		},
		{
			Name:   "collision removes overlap",
			Nodes:  []Node{{X: 0, Y: 0}, {X: 0.5, Y: 0}},
			Forces: []Force{ForceCollide(0.3)},
			Assertions: func(t *testing.T, nodes []Node) {
				assert.Greater(t, distance(&nodes[0], &nodes[1]), 0.59)
			},
		},
		{
			Name:   "radial pull moves nodes onto the circle",
			Nodes:  []Node{{X: 1, Y: 0}, {X: 0, Y: 50}},
			Forces: []Force{ForceRadial(0, 0, 20, 0.1)},
			Assertions: func(t *testing.T, nodes []Node) {
				for _, n := range nodes {
					assert.InDelta(t, 20.0, math.Hypot(n.X, n.Y), 0.5)
				}
			},
		},
		{
			Name:  "pinned nodes do not move",
			Nodes: []Node{{X: 0, Y: 0, Pinned: true}, {X: 1, Y: 0}},
			Forces: []Force{
				ForceManyBody(-30),
				ForceX(100, 0.1),
			},
			Assertions: func(t *testing.T, nodes []Node) {
				assert := assert.New(t)
				assert.Equal(Node{X: 0, Y: 0, Pinned: true}, nodes[0])
				assert.Greater(nodes[1].X, 1.0)
			},
		},
		{
			Name:  "empty node set",
			Nodes: []Node{},
			Forces: []Force{
				ForceManyBody(-30),
				ForceLink(nil),
				ForceCollide(1),
				ForceCenter(0, 0, 1),
				ForceX(0, 0.1),
				ForceY(0, 0.1),
				ForceRadial(0, 0, 1, 0.1),
			},
			Assertions: func(t *testing.T, nodes []Node) {
				assert.Empty(t, nodes)
			},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			s := NewSimulation(test.Nodes)
			for _, f := range test.Forces {
				s.AddForce(f)
			}
			s.TickN(200)
			test.Assertions(t, s.Nodes())
		})
	}
}

func TestSimulation_AlphaDecaysToFloor(t *testing.T) {
	s := NewSimulation([]Node{{X: 0, Y: 0}})
	assert := assert.New(t)
	assert.Equal(1.0, s.Alpha())
	prev := s.Alpha()
	for i := 0; i < 1000; i++ {
		s.Tick()
		alpha := s.Alpha()
		assert.GreaterOrEqual(alpha, 0.001)
		if prev > 0.001 {
			assert.Less(alpha, prev, "tick %d", i)
		} else {
			assert.Equal(0.001, alpha, "tick %d", i)
		}
		prev = alpha
	}
	assert.Equal(0.001, s.Alpha())
}

func TestSimulation_AlphaTarget(t *testing.T) {
	s := NewSimulation(nil).SetAlphaTarget(0.3).SetAlpha(0.1)
	s.TickN(1000)
	assert.InDelta(t, 0.3, s.Alpha(), 1e-6, "alpha approaches its target from below")
}

func TestSimulation_ForcesShareVelocitiesNotPositions(t *testing.T) {
	s := NewSimulation([]Node{{X: 1, Y: 2}})
	seen := []Node{}
	record := ForceFunc(func(nodes []Node) {
		seen = append(seen, nodes[0])
		nodes[0].VX += 1
	})
	s.AddForce(record).AddForce(record)
	s.Tick()
	assert := assert.New(t)
	require.Len(t, seen, 2)
	assert.Equal(Node{X: 1, Y: 2}, seen[0])
	assert.Equal(Node{X: 1, Y: 2, VX: 1}, seen[1], "second force sees the first force's velocity on the same positions")
	assert.InDelta(1+2*s.Alpha(), s.Node(0).X, 1e-12)
	assert.InDelta(2*0.4, s.Node(0).VX, 1e-12, "velocity decay is applied after integration")
}

func TestSimulation_Setters(t *testing.T) {
	s := NewSimulation([]Node{{X: 0, Y: 0, VX: 10}}).
		SetAlpha(0.5).
		SetAlphaDecay(0).
		SetAlphaMin(0.2).
		SetVelocityDecay(0)
	s.Tick()
	assert := assert.New(t)
	assert.Equal(0.5, s.Alpha())
	assert.Equal(0.2, s.AlphaMin())
	assert.Equal(0.0, s.AlphaTarget())
	assert.Equal(5.0, s.Node(0).X)
	assert.Equal(10.0, s.Node(0).VX, "no friction")
	assert.Equal(100.0, s.KineticEnergy())
}

func TestSimulation_ApplyConfig(t *testing.T) {
	s := NewSimulationWithConfig(nil, SimulationConfig{AlphaInit: 0.5, AlphaTarget: 0.1})
	assert := assert.New(t)
	assert.Equal(0.5, s.Alpha())
	assert.Equal(0.1, s.AlphaTarget())
	assert.Equal(DefaultSimulationConfig.AlphaMin, s.AlphaMin(), "zero values fall back to the defaults")
	assert.InDelta(0.6, s.velocityDecay, 1e-12)
}

func TestSimulation_PlacesNodesWithoutPosition(t *testing.T) {
	nodes := []Node{NewNode("a"), {Name: "b", X: 3, Y: 4}, NewNode("c")}
	nodes[2].VX = math.NaN()
	s := NewSimulation(nodes)
	assert := assert.New(t)
	for _, n := range s.Nodes() {
		assert.False(math.IsNaN(n.X) || math.IsNaN(n.Y), "node %s", n.Name)
		assert.False(math.IsNaN(n.VX) || math.IsNaN(n.VY), "node %s", n.Name)
	}
	assert.Equal(Node{Name: "b", X: 3, Y: 4}, s.Nodes()[1], "placed nodes are kept")
	assert.NotEqual(s.Node(0).Pos(), s.Node(2).Pos())
}

func TestSimulation_ComputeLayout(t *testing.T) {
	s := NewSimulation(randomNodes(50, 8)).
		AddForce(ForceManyBody(-30)).
		AddForce(ForceCenter(0, 0, 1))
	stats := s.ComputeLayout(context.Background(), 0)
	assert := assert.New(t)
	assert.True(stats.Converged)
	assert.InDelta(300, stats.Iterations, 2)
	assert.Equal(s.AlphaMin(), s.Alpha())
}

func TestSimulation_ComputeLayoutStops(t *testing.T) {
	s := NewSimulation(randomNodes(10, 9)).AddForce(ForceManyBody(-30))
	ticks := 0
	s.OnTick(func(*Simulation) { ticks++ })
	stats := s.ComputeLayout(context.Background(), 25)
	assert := assert.New(t)
	assert.Equal(25, stats.Iterations)
	assert.Len(stats.KineticEnergy, 25)
	assert.Equal(25, ticks)
	assert.False(stats.Converged)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats = s.ComputeLayout(ctx, 0)
	assert.Equal(0, stats.Iterations)
	assert.Equal(25, ticks)
}

func TestSimulation_Find(t *testing.T) {
	s := NewSimulation([]Node{{X: 0, Y: 0}, {X: 5, Y: 5}})
	index, found := s.Find(4, 4, 0)
	assert.True(t, found)
	assert.Equal(t, 1, index)
}

func BenchmarkForceSimulation(b *testing.B) {
	for n := 0; n < b.N; n++ {
		nodes := make([]Node, 500)
		links := []Link{}
		for i := range nodes {
			nodes[i] = NewNode("")
			if i > 0 {
				links = append(links, Link{Source: i / 2, Target: i})
			}
		}
		NewSimulation(nodes).
			AddForce(ForceManyBody(-30)).
			AddForce(ForceLink(links)).
			AddForce(ForceCollide(5)).
			AddForce(ForceCenter(0, 0, 1)).
			ComputeLayout(context.Background(), 0)
	}
}
