package layout

import (
	"math"

	"github.com/quartercastle/vector"
)

// Node is a point mass of the simulation. Its index in the simulation's node
// slice is its identity, forces such as Link and Collide refer to nodes by
// index.
type Node struct {
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	// Pinned nodes are not moved by the integration step, forces may still
	// write to their velocity but it is reset every tick.
	Pinned bool `json:"pinned,omitempty"`
}

func (n *Node) Pos() vector.Vector {
	return vector.Vector{n.X, n.Y}
}

func (n *Node) Vel() vector.Vector {
	return vector.Vector{n.VX, n.VY}
}

func (n *Node) SetPos(pos vector.Vector) {
	n.X, n.Y = pos.X(), pos.Y()
}

func (n *Node) unplaced() bool {
	return math.IsNaN(n.X) || math.IsNaN(n.Y)
}

// NewNode returns a node without a position, it is placed when handed to
// NewSimulation.
func NewNode(name string) Node {
	return Node{Name: name, X: math.NaN(), Y: math.NaN()}
}
