// adapted from https://github.com/jwhandley/graphyz/blob/main/main.go
package layout

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

type SimulationConfig struct {
	// initial temperature of simulation
	AlphaInit float64
	// lower bound of the temperature, alpha never drops below it
	AlphaMin float64
	// decay of temperature per tick
	AlphaDecay float64
	// target temperature of simulation
	AlphaTarget float64
	// VelocityDecay is the friction applied to all velocities after each
	// tick: 0 keeps velocities, 1 stops every node after each tick. Values
	// outside of [0, 1] are accepted and let the system gain energy.
	VelocityDecay float64
	// Placement is used for nodes without a position
	Placement Placement
}

// DefaultSimulationConfig cools the simulation from alpha=1 down to
// alpha=0.001 in 300 ticks.
var DefaultSimulationConfig = SimulationConfig{
	AlphaInit:     1.0,
	AlphaMin:      0.001,
	AlphaDecay:    1 - math.Pow(0.001, 1.0/300),
	AlphaTarget:   0.0,
	VelocityDecay: 0.6,
	Placement:     Placement{Layout: InitialLayoutPhyllotaxis},
}

// Simulation owns a fixed set of nodes and an ordered list of forces. Every
// Tick applies all forces in the order they were added and then integrates
// the node positions.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	nodes         []Node
	forces        []Force
	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64
	listeners     []func(*Simulation)
}

type Stats struct {
	Iterations int
	TotalTime  time.Duration
	Converged  bool
	// KineticEnergy holds the kinetic energy after every tick.
	KineticEnergy []float64
}

// NewSimulation takes ownership of nodes. Nodes with a NaN coordinate are
// placed on a phyllotaxis spiral.
func NewSimulation(nodes []Node) *Simulation {
	return NewSimulationWithConfig(nodes, DefaultSimulationConfig)
}

func NewSimulationWithConfig(nodes []Node, conf SimulationConfig) *Simulation {
	s := &Simulation{nodes: nodes}
	s.ApplyConfig(conf)
	InitializeNodes(s.nodes, conf.Placement)
	return s
}

// ApplyConfig replaces zero values of conf with the defaults and resets
// alpha to conf.AlphaInit. Use the setters to configure an explicit zero.
func (s *Simulation) ApplyConfig(conf SimulationConfig) {
	if conf.AlphaInit == 0.0 {
		conf.AlphaInit = DefaultSimulationConfig.AlphaInit
	}
	if conf.AlphaMin == 0.0 {
		conf.AlphaMin = DefaultSimulationConfig.AlphaMin
	}
	if conf.AlphaDecay == 0.0 {
		conf.AlphaDecay = DefaultSimulationConfig.AlphaDecay
	}
	if conf.VelocityDecay == 0.0 {
		conf.VelocityDecay = DefaultSimulationConfig.VelocityDecay
	}
	s.alpha = conf.AlphaInit
	s.alphaMin = conf.AlphaMin
	s.alphaDecay = conf.AlphaDecay
	s.alphaTarget = conf.AlphaTarget
	s.velocityDecay = conf.VelocityDecay
}

// AddForce appends f to the forces. Forces run in the order they were added
// and see the velocity changes of the forces before them.
func (s *Simulation) AddForce(f Force) *Simulation {
	s.forces = append(s.forces, f)
	return s
}

// SetAlpha sets the current temperature, e.g. to reheat a cooled simulation.
func (s *Simulation) SetAlpha(alpha float64) *Simulation {
	s.alpha = alpha
	return s
}

func (s *Simulation) SetAlphaMin(alphaMin float64) *Simulation {
	s.alphaMin = alphaMin
	return s
}

func (s *Simulation) SetAlphaDecay(alphaDecay float64) *Simulation {
	s.alphaDecay = alphaDecay
	return s
}

func (s *Simulation) SetAlphaTarget(alphaTarget float64) *Simulation {
	s.alphaTarget = alphaTarget
	return s
}

func (s *Simulation) SetVelocityDecay(velocityDecay float64) *Simulation {
	s.velocityDecay = velocityDecay
	return s
}

// OnTick registers fn to be called at the end of every tick.
func (s *Simulation) OnTick(fn func(*Simulation)) *Simulation {
	s.listeners = append(s.listeners, fn)
	return s
}

// Nodes returns the node slice owned by the simulation. Positions may be read
// after each tick, the slice must not be resized.
func (s *Simulation) Nodes() []Node {
	return s.nodes
}

func (s *Simulation) Node(i int) *Node {
	return &s.nodes[i]
}

func (s *Simulation) Alpha() float64 {
	return s.alpha
}

func (s *Simulation) AlphaMin() float64 {
	return s.alphaMin
}

func (s *Simulation) AlphaTarget() float64 {
	return s.alphaTarget
}

// Tick advances the simulation by one step: cool alpha, apply the forces and
// move every node by its velocity scaled with alpha.
func (s *Simulation) Tick() {
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay
	if s.alpha < s.alphaMin {
		s.alpha = s.alphaMin
	}
	for _, f := range s.forces {
		f.Apply(s.nodes)
	}
	s.updatePositions()
	for _, fn := range s.listeners {
		fn(s)
	}
}

func (s *Simulation) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func (s *Simulation) updatePositions() {
	friction := 1 - s.velocityDecay
	for i := range s.nodes {
		node := &s.nodes[i]
		if node.Pinned {
			node.VX, node.VY = 0, 0
			continue
		}
		node.X += node.VX * s.alpha
		node.Y += node.VY * s.alpha
		node.VX *= friction
		node.VY *= friction
	}
}

// Converged reports whether alpha has reached its floor or its target.
func (s *Simulation) Converged() bool {
	return s.alpha <= s.alphaMin || isClose(s.alphaTarget, s.alpha)
}

// ComputeLayout ticks until the simulation converged, maxTicks ticks have
// been run (maxTicks <= 0 means no limit) or ctx is done.
func (s *Simulation) ComputeLayout(ctx context.Context, maxTicks int) Stats {
	startTime := time.Now()
	stats := Stats{}
simulation:
	for maxTicks <= 0 || stats.Iterations < maxTicks {
		select {
		case <-ctx.Done():
			break simulation
		default:
			// continue looping
		}
		s.Tick()
		stats.Iterations += 1
		stats.KineticEnergy = append(stats.KineticEnergy, s.KineticEnergy())
		if s.Converged() {
			stats.Converged = true
			break
		}
	}
	stats.TotalTime = time.Since(startTime)
	log.Ctx(ctx).Debug().Msgf(
		"force simulation finished: stats{iterations: %d, time: %d ms, converged: %t, alpha: %f}",
		stats.Iterations,
		stats.TotalTime.Milliseconds(),
		stats.Converged,
		s.alpha,
	)
	return stats
}

// KineticEnergy returns the sum of the squared velocities of all nodes.
func (s *Simulation) KineticEnergy() float64 {
	energy := 0.0
	for i := range s.nodes {
		v := s.nodes[i].Vel().Magnitude()
		energy += v * v
	}
	return energy
}

// Find returns the index of the node closest to (x, y) within radius, radius
// <= 0 searches without limit.
func (s *Simulation) Find(x, y, radius float64) (int, bool) {
	return NewQuadTree(s.nodes).Find(x, y, radius)
}
