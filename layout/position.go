package layout

// XForce pulls every node towards the vertical line at x.
type XForce struct {
	x        float64
	strength float64
}

func ForceX(x, strength float64) *XForce {
	return &XForce{x: x, strength: strength}
}

func (f *XForce) Apply(nodes []Node) {
	for i := range nodes {
		nodes[i].VX += (f.x - nodes[i].X) * f.strength
	}
}

// YForce pulls every node towards the horizontal line at y.
type YForce struct {
	y        float64
	strength float64
}

func ForceY(y, strength float64) *YForce {
	return &YForce{y: y, strength: strength}
}

func (f *YForce) Apply(nodes []Node) {
	for i := range nodes {
		nodes[i].VY += (f.y - nodes[i].Y) * f.strength
	}
}
