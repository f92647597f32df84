package layout

import (
	"math"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
)

// Graph is the serialisation format of a layout input and output.
type Graph struct {
	Nodes []*GraphNode `json:"nodes"`
	Edges []*Edge      `json:"edges"`
}

type GraphNode struct {
	Name string `json:"name"`
	// Radius is used by the collision force, 0 means the default radius.
	Radius float64 `json:"radius,omitempty"`
	Pinned bool    `json:"pinned,omitempty"`
	// Pos is empty for nodes that still need to be placed.
	Pos vector.Vector `json:"pos,omitempty"`
}

type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	// Value weights the link strength, 0 means 1.
	Value float64 `json:"value"`
}

// Validate checks that every edge references existing nodes and that every
// position has two coordinates.
func (g *Graph) Validate() error {
	for i, node := range g.Nodes {
		if node == nil {
			return errors.Errorf("node %d: missing", i)
		}
		if len(node.Pos) != 0 && len(node.Pos) != 2 {
			return errors.Errorf("node %d (%q): position needs 2 coordinates, got %d", i, node.Name, len(node.Pos))
		}
		if node.Radius < 0 {
			return errors.Errorf("node %d (%q): negative radius %f", i, node.Name, node.Radius)
		}
	}
	for i, edge := range g.Edges {
		if edge == nil {
			return errors.Errorf("edge %d: missing", i)
		}
		if edge.Source < 0 || edge.Source >= len(g.Nodes) {
			return errors.Errorf("edge %d: source %d out of range [0, %d)", i, edge.Source, len(g.Nodes))
		}
		if edge.Target < 0 || edge.Target >= len(g.Nodes) {
			return errors.Errorf("edge %d: target %d out of range [0, %d)", i, edge.Target, len(g.Nodes))
		}
		if edge.Source == edge.Target {
			return errors.Errorf("edge %d: self-loop on node %d", i, edge.Source)
		}
	}
	return nil
}

// SimulationNodes converts the graph nodes to simulation nodes with the same
// indices. Nodes without a position get NaN coordinates.
func (g *Graph) SimulationNodes() []Node {
	nodes := make([]Node, len(g.Nodes))
	for i, gn := range g.Nodes {
		nodes[i] = NewNode(gn.Name)
		nodes[i].Pinned = gn.Pinned
		if len(gn.Pos) == 2 {
			nodes[i].SetPos(gn.Pos)
		}
	}
	return nodes
}

func (g *Graph) Links() []Link {
	links := make([]Link, len(g.Edges))
	for i, edge := range g.Edges {
		links[i] = Link{Source: edge.Source, Target: edge.Target}
	}
	return links
}

// EdgeValue returns the weight of edge i, defaulting to 1.
func (g *Graph) EdgeValue(i int) float64 {
	if g.Edges[i].Value == 0.0 {
		return 1.0
	}
	return g.Edges[i].Value
}

// NodeRadius returns the radius of node i or def if it has none.
func (g *Graph) NodeRadius(i int, def float64) float64 {
	if g.Nodes[i].Radius == 0.0 {
		return def
	}
	return g.Nodes[i].Radius
}

// UpdatePositions copies the positions of the simulation nodes back into the
// graph. NaN positions are not copied.
func (g *Graph) UpdatePositions(nodes []Node) {
	for i := range g.Nodes {
		if i >= len(nodes) || math.IsNaN(nodes[i].X) || math.IsNaN(nodes[i].Y) {
			continue
		}
		g.Nodes[i].Pos = nodes[i].Pos()
	}
}
