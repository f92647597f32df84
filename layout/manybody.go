package layout

import (
	"math"
)

// ManyBodyForce applies a force between every pair of nodes, approximated
// with the Barnes-Hut algorithm. Negative strength repels, positive strength
// attracts.
type ManyBodyForce struct {
	strength    float64
	theta       float64
	distanceMin float64
	distanceMax float64
}

// ForceManyBody returns a many-body force with theta=0.9, distanceMin=1 and no
// distanceMax.
func ForceManyBody(strength float64) *ManyBodyForce {
	return &ManyBodyForce{
		strength:    strength,
		theta:       0.9,
		distanceMin: 1.0,
		distanceMax: math.Inf(+1),
	}
}

func (f *ManyBodyForce) WithStrength(strength float64) *ManyBodyForce {
	f.strength = strength
	return f
}

// WithTheta sets the accuracy of the approximation, see
// https://en.wikipedia.org/wiki/Barnes%E2%80%93Hut_simulation#Calculating_the_force_acting_on_a_body
// A cell of width s at distance d is treated as a single body if s/d < theta,
// so theta=0 computes the exact all-pairs force.
func (f *ManyBodyForce) WithTheta(theta float64) *ManyBodyForce {
	f.theta = theta
	return f
}

func (f *ManyBodyForce) WithDistanceMin(distance float64) *ManyBodyForce {
	f.distanceMin = distance
	return f
}

func (f *ManyBodyForce) WithDistanceMax(distance float64) *ManyBodyForce {
	f.distanceMax = distance
	return f
}

func (f *ManyBodyForce) Apply(nodes []Node) {
	qt := NewQuadTree(nodes)
	for i := range nodes {
		if nodes[i].unplaced() {
			continue
		}
		fx, fy := f.calculateForce(qt, nodes, i)
		nodes[i].VX += fx
		nodes[i].VY += fy
	}
}

// calculateForce returns the total force acting on node i.
func (f *ManyBodyForce) calculateForce(qt *QuadTree, nodes []Node, i int) (fx, fy float64) {
	distanceMin2 := f.distanceMin * f.distanceMin
	distanceMax2 := f.distanceMax * f.distanceMax
	xi, yi := nodes[i].X, nodes[i].Y
	qt.Visit(func(q *Quad, x0, _, x1, _ float64) bool {
		if q.IsLeaf() {
			for l := q; l != nil; l = l.Next {
				if l.Index == i {
					continue
				}
				dx, dy := nodes[l.Index].X-xi, nodes[l.Index].Y-yi
				l2 := dx*dx + dy*dy
				if l2 == 0 || l2 > distanceMax2 {
					// coincident nodes have no direction to push along
					continue
				}
				w := f.strength / clamp(l2, distanceMin2, distanceMax2)
				fx += dx * w
				fy += dy * w
			}
			return true
		}
		dx, dy := q.X-xi, q.Y-yi
		l2 := dx*dx + dy*dy
		s := x1 - x0
		d := math.Sqrt(l2)
		if s/d < f.theta {
			if l2 <= distanceMax2 {
				w := f.strength * q.Mass / clamp(l2, distanceMin2, distanceMax2)
				fx += dx * w
				fy += dy * w
			}
			return true
		}
		return false
	})
	return fx, fy
}
