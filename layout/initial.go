package layout

import (
	"math"
	"math/rand"

	"github.com/quartercastle/vector"
)

type InitialLayout int

const (
	InitialLayoutUndefined InitialLayout = iota
	// place nodes on a phyllotaxis spiral around the origin
	InitialLayoutPhyllotaxis
	// place nodes on a circle, evenly spread
	InitialLayoutCircle
	// place nodes randomly inside a rect
	InitialLayoutRandom
)

const initialRadius = 10.0

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// DefaultPlacementRect is used for circle and random placement if the
// Placement has no Rect.
var DefaultPlacementRect = Rect{X: -500, Y: -500, Width: 1000, Height: 1000}

// Placement describes where InitializeNodes puts nodes without a position.
type Placement struct {
	Layout InitialLayout
	// Rect is used by InitialLayoutCircle and InitialLayoutRandom.
	Rect        Rect
	RandomFloat func() float64
}

// InitializeNodes assigns a position to every node whose X or Y is NaN and
// resets NaN velocities. Placed nodes are left alone.
func InitializeNodes(nodes []Node, p Placement) {
	if p.RandomFloat == nil {
		p.RandomFloat = func() float64 { return rand.Float64() }
	}
	if p.Rect.Width == 0.0 || p.Rect.Height == 0.0 {
		p.Rect = DefaultPlacementRect
	}
	for i := range nodes {
		node := &nodes[i]
		if node.unplaced() {
			switch p.Layout {
			case InitialLayoutCircle:
				node.SetPos(pointOnCircle(i, len(nodes), math.Min(p.Rect.Width, p.Rect.Height)/2, p.Rect.Center()))
			case InitialLayoutRandom:
				node.SetPos(randomVectorInside(p.Rect, p.RandomFloat))
			default:
				node.SetPos(phyllotaxis(i))
			}
		}
		if math.IsNaN(node.VX) || math.IsNaN(node.VY) {
			node.VX, node.VY = 0, 0
		}
	}
}

func phyllotaxis(i int) vector.Vector {
	radius := initialRadius * math.Sqrt(0.5+float64(i))
	angle := float64(i) * initialAngle
	return vector.Vector{radius * math.Cos(angle), radius * math.Sin(angle)}
}

func pointOnCircle(i, totalPoints int, radius float64, center vector.Vector) vector.Vector {
	return vector.Vector{
		math.Sin(float64(i) * 2.0 * math.Pi / float64(totalPoints)),
		math.Cos(float64(i) * 2.0 * math.Pi / float64(totalPoints)),
	}.Scale(radius).Add(center)
}

func randomVectorInside(rect Rect, rndSource func() float64) vector.Vector {
	return vector.Vector{
		rect.X + rndSource()*rect.Width,
		rect.Y + rndSource()*rect.Height,
	}
}
