package layout

import (
	"math"
)

// CollideForce treats nodes as circles and pushes overlapping nodes apart.
// Positions are predicted as x+vx, so collisions are resolved against where
// the nodes are heading rather than where they are.
type CollideForce struct {
	radius     func(i int) float64
	strength   float64
	iterations int
}

// ForceCollide returns a collision force with the same radius for every node,
// strength 1 and a single iteration per tick.
func ForceCollide(radius float64) *CollideForce {
	return &CollideForce{
		radius:     constant(radius),
		strength:   1.0,
		iterations: 1,
	}
}

// WithRadius sets the radius per node, fn is called with the node index.
func (f *CollideForce) WithRadius(fn func(i int) float64) *CollideForce {
	f.radius = fn
	return f
}

func (f *CollideForce) WithStrength(strength float64) *CollideForce {
	f.strength = strength
	return f
}

func (f *CollideForce) WithIterations(iterations int) *CollideForce {
	f.iterations = iterations
	return f
}

func (f *CollideForce) Apply(nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	radii := make([]float64, len(nodes))
	for i := range nodes {
		radii[i] = f.radius(i)
	}
	predicted := make([]Node, len(nodes))
	for k := 0; k < f.iterations; k++ {
		for i := range nodes {
			predicted[i] = Node{X: nodes[i].X + nodes[i].VX, Y: nodes[i].Y + nodes[i].VY}
		}
		qt := NewQuadTree(predicted)
		qt.VisitAfter(func(q *Quad, _, _, _, _ float64) {
			q.R = 0
			if q.IsLeaf() {
				for l := q; l != nil; l = l.Next {
					q.R = math.Max(q.R, radii[l.Index])
				}
				return
			}
			for _, child := range q.Children {
				if child != nil {
					q.R = math.Max(q.R, child.R)
				}
			}
		})
		for i := range nodes {
			f.resolve(qt, nodes, radii, i)
		}
	}
}

// resolve pushes node i and every overlapping node with a larger index apart,
// so each pair is handled once per iteration.
func (f *CollideForce) resolve(qt *QuadTree, nodes []Node, radii []float64, i int) {
	node := &nodes[i]
	if node.unplaced() {
		return
	}
	ri := radii[i]
	ri2 := ri * ri
	xi, yi := node.X+node.VX, node.Y+node.VY
	qt.Visit(func(q *Quad, x0, y0, x1, y1 float64) bool {
		r := ri + q.R
		if x0 > xi+r || x1 < xi-r || y0 > yi+r || y1 < yi-r {
			return true
		}
		if !q.IsLeaf() {
			return false
		}
		for l := q; l != nil; l = l.Next {
			j := l.Index
			if j <= i {
				continue
			}
			other := &nodes[j]
			rj := radii[j]
			r := ri + rj
			x := xi - other.X - other.VX
			y := yi - other.Y - other.VY
			l2 := x*x + y*y
			if l2 >= r*r || l2 == 0 {
				// coincident nodes have no direction to push along
				continue
			}
			dist := math.Sqrt(l2)
			scale := (r - dist) / dist * f.strength
			x, y = x*scale, y*scale
			rj2 := rj * rj
			share := rj2 / (ri2 + rj2)
			node.VX += x * share
			node.VY += y * share
			other.VX -= x * (1 - share)
			other.VY -= y * (1 - share)
		}
		return true
	})
}
