package layout

import (
	"math"
)

// Link connects two nodes by their index.
type Link struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// LinkForce pulls linked nodes towards a desired distance like a spring. A
// link shorter than its distance pushes its nodes apart.
type LinkForce struct {
	links      []Link
	strength   func(i int) float64
	distance   func(i int) float64
	iterations int
}

// ForceLink returns a link force with strength 1, distance 30 and a single
// iteration per tick.
func ForceLink(links []Link) *LinkForce {
	return &LinkForce{
		links:      links,
		strength:   constant(1.0),
		distance:   constant(30.0),
		iterations: 1,
	}
}

// WithStrength sets the strength per link, fn is called with the link index.
func (f *LinkForce) WithStrength(fn func(i int) float64) *LinkForce {
	f.strength = fn
	return f
}

// WithDistance sets the desired distance per link, fn is called with the
// link index.
func (f *LinkForce) WithDistance(fn func(i int) float64) *LinkForce {
	f.distance = fn
	return f
}

// WithIterations sets how often the links are relaxed per tick.
func (f *LinkForce) WithIterations(iterations int) *LinkForce {
	f.iterations = iterations
	return f
}

func (f *LinkForce) Links() []Link {
	return f.links
}

func (f *LinkForce) Apply(nodes []Node) {
	for k := 0; k < f.iterations; k++ {
		for i, link := range f.links {
			if !f.valid(link, len(nodes)) {
				continue
			}
			source, target := &nodes[link.Source], &nodes[link.Target]
			dx, dy := target.X-source.X, target.Y-source.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist == 0 || math.IsNaN(dist) {
				continue
			}
			delta := (dist - f.distance(i)) / dist * f.strength(i) / 2
			source.VX += dx * delta
			source.VY += dy * delta
			target.VX -= dx * delta
			target.VY -= dy * delta
		}
	}
}

func (f *LinkForce) valid(link Link, n int) bool {
	return link.Source >= 0 && link.Source < n &&
		link.Target >= 0 && link.Target < n &&
		link.Source != link.Target
}
