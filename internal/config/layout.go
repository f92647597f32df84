package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/suxatcode/force-layout/layout"
	"gopkg.in/yaml.v3"
)

// LayoutConfig is a preset of simulation and force parameters. A nil force
// preset disables the force, in YAML a force is disabled with `null`.
type LayoutConfig struct {
	Simulation SimulationPreset `yaml:"simulation"`
	ManyBody   *ManyBodyPreset  `yaml:"many_body"`
	Link       *LinkPreset      `yaml:"link"`
	Collide    *CollidePreset   `yaml:"collide"`
	Center     *CenterPreset    `yaml:"center"`
	X          *AxisPreset      `yaml:"x"`
	Y          *AxisPreset      `yaml:"y"`
	Radial     *RadialPreset    `yaml:"radial"`
}

type SimulationPreset struct {
	AlphaInit     float64 `yaml:"alpha_init"`
	AlphaMin      float64 `yaml:"alpha_min"`
	AlphaDecay    float64 `yaml:"alpha_decay"`
	AlphaTarget   float64 `yaml:"alpha_target"`
	VelocityDecay float64 `yaml:"velocity_decay"`
	// one of phyllotaxis, circle, random
	Placement string `yaml:"placement"`
}

type ManyBodyPreset struct {
	Strength    float64 `yaml:"strength"`
	Theta       float64 `yaml:"theta"`
	DistanceMin float64 `yaml:"distance_min"`
	// 0 means unlimited
	DistanceMax float64 `yaml:"distance_max"`
}

type LinkPreset struct {
	Strength   float64 `yaml:"strength"`
	Distance   float64 `yaml:"distance"`
	Iterations int     `yaml:"iterations"`
	// WeightByValue multiplies the strength with the edge value.
	WeightByValue bool `yaml:"weight_by_value"`
}

type CollidePreset struct {
	// Radius of nodes without an own radius.
	Radius float64 `yaml:"radius"`
	// 0 means 1
	Strength   float64 `yaml:"strength"`
	Iterations int     `yaml:"iterations"`
}

type CenterPreset struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Strength float64 `yaml:"strength"`
}

type AxisPreset struct {
	Target   float64 `yaml:"target"`
	Strength float64 `yaml:"strength"`
}

type RadialPreset struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// DefaultLayoutConfig returns repulsion, springs and centering with the
// defaults of the layout package.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Simulation: SimulationPreset{
			AlphaInit:     layout.DefaultSimulationConfig.AlphaInit,
			AlphaMin:      layout.DefaultSimulationConfig.AlphaMin,
			AlphaDecay:    layout.DefaultSimulationConfig.AlphaDecay,
			AlphaTarget:   layout.DefaultSimulationConfig.AlphaTarget,
			VelocityDecay: layout.DefaultSimulationConfig.VelocityDecay,
			Placement:     "phyllotaxis",
		},
		ManyBody: &ManyBodyPreset{Strength: -30, Theta: 0.9, DistanceMin: 1},
		Link:     &LinkPreset{Strength: 1, Distance: 30, Iterations: 1, WeightByValue: true},
		Center:   &CenterPreset{Strength: 1},
	}
}

// LoadLayoutConfig reads a YAML preset, keys missing in the file keep their
// default value.
func LoadLayoutConfig(path string) (LayoutConfig, error) {
	conf := DefaultLayoutConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrapf(err, "failed to read layout config '%s'", path)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "failed to parse layout config '%s'", path)
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.Wrapf(err, "invalid layout config '%s'", path)
	}
	return conf, nil
}

// Validate rejects presets that cannot be turned into forces. Numerical
// parameters are not checked, odd values only make odd layouts.
func (c LayoutConfig) Validate() error {
	if _, err := c.Simulation.placement(); err != nil {
		return err
	}
	if c.Link != nil && c.Link.Iterations < 0 {
		return errors.Errorf("link: negative iterations %d", c.Link.Iterations)
	}
	if c.Collide != nil && c.Collide.Iterations < 0 {
		return errors.Errorf("collide: negative iterations %d", c.Collide.Iterations)
	}
	return nil
}

func (p SimulationPreset) placement() (layout.InitialLayout, error) {
	switch p.Placement {
	case "", "phyllotaxis":
		return layout.InitialLayoutPhyllotaxis, nil
	case "circle":
		return layout.InitialLayoutCircle, nil
	case "random":
		return layout.InitialLayoutRandom, nil
	}
	return layout.InitialLayoutUndefined, errors.Errorf("unknown placement '%s'", p.Placement)
}

func (c LayoutConfig) SimulationConfig() layout.SimulationConfig {
	initial, _ := c.Simulation.placement()
	return layout.SimulationConfig{
		AlphaInit:     c.Simulation.AlphaInit,
		AlphaMin:      c.Simulation.AlphaMin,
		AlphaDecay:    c.Simulation.AlphaDecay,
		AlphaTarget:   c.Simulation.AlphaTarget,
		VelocityDecay: c.Simulation.VelocityDecay,
		Placement:     layout.Placement{Layout: initial},
	}
}

// Forces builds the enabled forces for g in a fixed order: many-body, link,
// collide, center, x, y, radial.
func (c LayoutConfig) Forces(g *layout.Graph) []layout.Force {
	forces := []layout.Force{}
	if p := c.ManyBody; p != nil {
		f := layout.ForceManyBody(p.Strength).WithTheta(p.Theta).WithDistanceMin(p.DistanceMin)
		if p.DistanceMax > 0 {
			f.WithDistanceMax(p.DistanceMax)
		} else {
			f.WithDistanceMax(math.Inf(+1))
		}
		forces = append(forces, f)
	}
	if p := c.Link; p != nil && len(g.Edges) > 0 {
		strength := func(i int) float64 { return p.Strength }
		if p.WeightByValue {
			strength = func(i int) float64 { return p.Strength * g.EdgeValue(i) }
		}
		forces = append(forces, layout.ForceLink(g.Links()).
			WithStrength(strength).
			WithDistance(func(int) float64 { return p.Distance }).
			WithIterations(max(p.Iterations, 1)))
	}
	if p := c.Collide; p != nil {
		strength := p.Strength
		if strength == 0.0 {
			strength = 1.0
		}
		forces = append(forces, layout.ForceCollide(p.Radius).
			WithRadius(func(i int) float64 { return g.NodeRadius(i, p.Radius) }).
			WithStrength(strength).
			WithIterations(max(p.Iterations, 1)))
	}
	if p := c.Center; p != nil {
		forces = append(forces, layout.ForceCenter(p.X, p.Y, p.Strength))
	}
	if p := c.X; p != nil {
		forces = append(forces, layout.ForceX(p.Target, p.Strength))
	}
	if p := c.Y; p != nil {
		forces = append(forces, layout.ForceY(p.Target, p.Strength))
	}
	if p := c.Radial; p != nil {
		forces = append(forces, layout.ForceRadial(p.X, p.Y, p.Radius, p.Strength))
	}
	return forces
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
