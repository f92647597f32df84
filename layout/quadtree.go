// adapted from https://github.com/jwhandley/graphyz/blob/main/quadtree.go
package layout

import (
	"math"

	"github.com/quartercastle/vector"
)

const (
	// bounding box axes shorter than this are widened by ±1
	degenerateExtent = 1e-6
	// cells are not split below this depth, points are chained instead
	maxQuadTreeDepth = 64
)

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Center() vector.Vector {
	return vector.Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

// Quad is a cell of a QuadTree. A nil *Quad is an empty cell.
//
// Leaves reference exactly one node by Index. Points at the same position
// (or points that could not be separated within maxQuadTreeDepth) are chained
// behind the first leaf through Next. Internal cells have Index == -1.
type Quad struct {
	Children [4]*Quad
	Index    int
	Next     *Quad
	// X, Y is the center of mass of the cell, Mass the number of points in
	// it. For leaves with a chain this covers the whole chain.
	X, Y, Mass float64
	// R is an additional aggregate owned by whoever visits the tree, e.g.
	// CollideForce stores the largest radius inside the cell here.
	R float64
}

func (q *Quad) IsLeaf() bool {
	return q.Index >= 0
}

// QuadTree is a Barnes-Hut spatial index over a node slice. It is built from
// scratch from a position snapshot and never updated afterwards.
type QuadTree struct {
	Root   *Quad
	Region Rect
	nodes  []Node
}

// NewQuadTree indexes all nodes with a valid position. The region is the
// bounding box of the nodes, squared to its larger side.
func NewQuadTree(nodes []Node) *QuadTree {
	qt := &QuadTree{nodes: nodes}
	region, ok := boundingBox(nodes)
	if !ok {
		return qt
	}
	qt.Region = region
	x0, y0, x1, y1 := qt.bounds()
	for i := range nodes {
		if nodes[i].unplaced() {
			continue
		}
		leaf := &Quad{Index: i, X: nodes[i].X, Y: nodes[i].Y, Mass: 1}
		qt.Root = insert(qt.Root, leaf, x0, y0, x1, y1, 0)
	}
	qt.CalculateMasses()
	return qt
}

func boundingBox(nodes []Node) (Rect, bool) {
	x0, y0 := math.Inf(+1), math.Inf(+1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for i := range nodes {
		if nodes[i].unplaced() {
			continue
		}
		x0, x1 = math.Min(x0, nodes[i].X), math.Max(x1, nodes[i].X)
		y0, y1 = math.Min(y0, nodes[i].Y), math.Max(y1, nodes[i].Y)
	}
	if x0 > x1 || y0 > y1 {
		return Rect{}, false
	}
	if x1-x0 < degenerateExtent {
		x0, x1 = x0-1.0, x1+1.0
	}
	if y1-y0 < degenerateExtent {
		y0, y1 = y0-1.0, y1+1.0
	}
	if w, h := x1-x0, y1-y0; w > h {
		y1 = y0 + w
	} else {
		x1 = x0 + h
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

func (qt *QuadTree) bounds() (x0, y0, x1, y1 float64) {
	return qt.Region.X, qt.Region.Y, qt.Region.X + qt.Region.Width, qt.Region.Y + qt.Region.Height
}

// quadrant returns the child slot of (x, y): NW=0, NE=1, SW=2, SE=3.
// Points on a midline go to the east/south side.
func quadrant(x, y, mx, my float64) int {
	k := 0
	if x >= mx {
		k |= 1
	}
	if y >= my {
		k |= 2
	}
	return k
}

func childBounds(k int, x0, y0, x1, y1 float64) (float64, float64, float64, float64) {
	mx, my := (x0+x1)/2, (y0+y1)/2
	if k&1 != 0 {
		x0 = mx
	} else {
		x1 = mx
	}
	if k&2 != 0 {
		y0 = my
	} else {
		y1 = my
	}
	return x0, y0, x1, y1
}

func insert(q, leaf *Quad, x0, y0, x1, y1 float64, depth int) *Quad {
	if q == nil {
		return leaf
	}
	mx, my := (x0+x1)/2, (y0+y1)/2
	if q.IsLeaf() {
		if (q.X == leaf.X && q.Y == leaf.Y) || depth >= maxQuadTreeDepth {
			leaf.Next = q.Next
			q.Next = leaf
			return q
		}
		old := q
		q = &Quad{Index: -1}
		q.Children[quadrant(old.X, old.Y, mx, my)] = old
	}
	k := quadrant(leaf.X, leaf.Y, mx, my)
	cx0, cy0, cx1, cy1 := childBounds(k, x0, y0, x1, y1)
	q.Children[k] = insert(q.Children[k], leaf, cx0, cy0, cx1, cy1, depth+1)
	return q
}

// CalculateMasses recomputes mass and center of mass of every cell bottom-up.
func (qt *QuadTree) CalculateMasses() {
	qt.VisitAfter(func(q *Quad, _, _, _, _ float64) {
		var mass, x, y float64
		if q.IsLeaf() {
			for l := q; l != nil; l = l.Next {
				node := &qt.nodes[l.Index]
				mass++
				x += node.X
				y += node.Y
			}
		} else {
			for _, child := range q.Children {
				if child == nil {
					continue
				}
				mass += child.Mass
				x += child.X * child.Mass
				y += child.Y * child.Mass
			}
		}
		q.Mass = mass
		if mass > 0 {
			q.X, q.Y = x/mass, y/mass
		}
	})
}

// Visit traverses the tree depth-first in pre-order, children in quadrant
// order. If fn returns true the children of q are skipped.
func (qt *QuadTree) Visit(fn func(q *Quad, x0, y0, x1, y1 float64) bool) {
	if qt.Root == nil {
		return
	}
	x0, y0, x1, y1 := qt.bounds()
	visit(qt.Root, fn, x0, y0, x1, y1)
}

func visit(q *Quad, fn func(q *Quad, x0, y0, x1, y1 float64) bool, x0, y0, x1, y1 float64) {
	if fn(q, x0, y0, x1, y1) || q.IsLeaf() {
		return
	}
	for k, child := range q.Children {
		if child == nil {
			continue
		}
		cx0, cy0, cx1, cy1 := childBounds(k, x0, y0, x1, y1)
		visit(child, fn, cx0, cy0, cx1, cy1)
	}
}

// VisitAfter traverses the tree depth-first in post-order, so fn sees all
// children of q before q itself.
func (qt *QuadTree) VisitAfter(fn func(q *Quad, x0, y0, x1, y1 float64)) {
	if qt.Root == nil {
		return
	}
	x0, y0, x1, y1 := qt.bounds()
	visitAfter(qt.Root, fn, x0, y0, x1, y1)
}

func visitAfter(q *Quad, fn func(q *Quad, x0, y0, x1, y1 float64), x0, y0, x1, y1 float64) {
	if !q.IsLeaf() {
		for k, child := range q.Children {
			if child == nil {
				continue
			}
			cx0, cy0, cx1, cy1 := childBounds(k, x0, y0, x1, y1)
			visitAfter(child, fn, cx0, cy0, cx1, cy1)
		}
	}
	fn(q, x0, y0, x1, y1)
}

// Find returns the index of the node closest to (x, y) within radius. A
// radius <= 0 or +Inf searches without limit.
func (qt *QuadTree) Find(x, y, radius float64) (int, bool) {
	best := math.Inf(+1)
	if radius > 0 {
		best = radius * radius
	}
	found := -1
	qt.Visit(func(q *Quad, x0, y0, x1, y1 float64) bool {
		r := math.Sqrt(best)
		if x0 > x+r || x1 < x-r || y0 > y+r || y1 < y-r {
			return true
		}
		if !q.IsLeaf() {
			return false
		}
		for l := q; l != nil; l = l.Next {
			node := &qt.nodes[l.Index]
			dx, dy := node.X-x, node.Y-y
			if d2 := dx*dx + dy*dy; d2 < best || (d2 == best && found < 0) {
				best, found = d2, l.Index
			}
		}
		return true
	})
	return found, found >= 0
}

// Leaves returns the node indices of all leaves in visiting order, chained
// leaves included.
func (qt *QuadTree) Leaves() []int {
	indices := make([]int, 0, len(qt.nodes))
	qt.Visit(func(q *Quad, _, _, _, _ float64) bool {
		for l := q; q.IsLeaf() && l != nil; l = l.Next {
			indices = append(indices, l.Index)
		}
		return false
	})
	return indices
}
