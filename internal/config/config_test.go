package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suxatcode/force-layout/layout"
)

func TestGetEnvConfig(t *testing.T) {
	t.Setenv("LOGLEVEL", "warn")
	t.Setenv("LAYOUT_TIMEOUT", "5s")
	t.Setenv("LAYOUT_MAX_TICKS", "42")
	conf, err := GetEnvConfig()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Config{LogLevel: "warn", Timeout: 5 * time.Second, MaxTicks: 42}, conf)
}

func TestGetEnvConfig_Invalid(t *testing.T) {
	t.Setenv("LAYOUT_MAX_TICKS", "many")
	_, err := GetEnvConfig()
	assert.Error(t, err)
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadLayoutConfig(t *testing.T) {
	for _, test := range []struct {
		Name          string
		Content       string
		ExpectedError bool
		Assertions    func(t *testing.T, conf LayoutConfig)
	}{
		{
			Name:    "empty file keeps defaults",
			Content: "",
			Assertions: func(t *testing.T, conf LayoutConfig) {
				assert.Equal(t, DefaultLayoutConfig(), conf)
			},
		},
		{
			Name: "override single keys",
			Content: `
simulation:
  velocity_decay: 0.4
  placement: circle
many_body:
  strength: -100
link:
  distance: 80
`,
			Assertions: func(t *testing.T, conf LayoutConfig) {
				assert := assert.New(t)
				assert.Equal(0.4, conf.Simulation.VelocityDecay)
				assert.Equal(layout.DefaultSimulationConfig.AlphaMin, conf.Simulation.AlphaMin)
				assert.Equal(-100.0, conf.ManyBody.Strength)
				assert.Equal(0.9, conf.ManyBody.Theta, "unset keys keep the default")
				assert.Equal(80.0, conf.Link.Distance)
				assert.Equal(1, conf.Link.Iterations)
			},
		},
		{
			Name: "enable and disable forces",
			Content: `
center: null
collide:
  radius: 5
radial:
  radius: 100
  strength: 0.1
`,
			Assertions: func(t *testing.T, conf LayoutConfig) {
				assert := assert.New(t)
				assert.Nil(conf.Center)
				assert.Equal(&CollidePreset{Radius: 5}, conf.Collide)
				assert.Equal(&RadialPreset{Radius: 100, Strength: 0.1}, conf.Radial)
			},
		},
		{
			Name:          "unknown placement",
			Content:       "simulation:\n  placement: spiral\n",
			ExpectedError: true,
		},
		{
			Name:          "broken yaml",
			Content:       "link: [",
			ExpectedError: true,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			conf, err := LoadLayoutConfig(writeFile(t, test.Content))
			if test.ExpectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			test.Assertions(t, conf)
		})
	}
}

func TestLoadLayoutConfig_MissingFile(t *testing.T) {
	_, err := LoadLayoutConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read layout config")
}

func TestLayoutConfig_Forces(t *testing.T) {
	g := &layout.Graph{
		Nodes: []*layout.GraphNode{{Name: "A"}, {Name: "B", Radius: 7}},
		Edges: []*layout.Edge{{Source: 0, Target: 1, Value: 2}},
	}
	conf := DefaultLayoutConfig()
	assert := assert.New(t)
	forces := conf.Forces(g)
	assert.Len(forces, 3)
	assert.IsType(&layout.ManyBodyForce{}, forces[0])
	assert.IsType(&layout.LinkForce{}, forces[1])
	assert.IsType(&layout.CenterForce{}, forces[2])

	conf.Collide = &CollidePreset{Radius: 2}
	conf.X = &AxisPreset{Strength: 0.1}
	conf.Y = &AxisPreset{Strength: 0.1}
	conf.Radial = &RadialPreset{Radius: 10, Strength: 0.1}
	assert.Len(conf.Forces(g), 7)

	assert.Len(conf.Forces(&layout.Graph{Nodes: g.Nodes}), 6, "no link force without edges")
}

func TestLayoutConfig_SimulationConfig(t *testing.T) {
	conf := DefaultLayoutConfig()
	conf.Simulation.Placement = "random"
	sc := conf.SimulationConfig()
	assert := assert.New(t)
	assert.Equal(layout.InitialLayoutRandom, sc.Placement.Layout)
	assert.Equal(layout.DefaultSimulationConfig.AlphaDecay, sc.AlphaDecay)
}
