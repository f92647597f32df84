package layout

import (
	"math"

	"github.com/quartercastle/vector"
)

// RadialForce pulls every node towards the circle of the given radius around
// (x, y).
type RadialForce struct {
	center   vector.Vector
	radius   float64
	strength float64
}

func ForceRadial(x, y, radius, strength float64) *RadialForce {
	return &RadialForce{center: vector.Vector{x, y}, radius: radius, strength: strength}
}

// Apply leaves nodes exactly at the center alone: they have no radial
// direction to be pulled along.
func (f *RadialForce) Apply(nodes []Node) {
	for i := range nodes {
		delta := nodes[i].Pos().Sub(f.center)
		dist := delta.Magnitude()
		if dist == 0 || math.IsNaN(dist) {
			continue
		}
		k := (f.radius - dist) * f.strength / dist
		nodes[i].VX += delta.X() * k
		nodes[i].VY += delta.Y() * k
	}
}
