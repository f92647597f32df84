package layout

// CenterForce moves the whole system so that its centroid approaches (x, y).
// Every node receives the same correction, the relative positions of the
// nodes are untouched.
type CenterForce struct {
	x, y     float64
	strength float64
}

func ForceCenter(x, y, strength float64) *CenterForce {
	return &CenterForce{x: x, y: y, strength: strength}
}

func (f *CenterForce) Apply(nodes []Node) {
	var sx, sy, n float64
	for i := range nodes {
		if nodes[i].unplaced() {
			continue
		}
		sx += nodes[i].X
		sy += nodes[i].Y
		n++
	}
	if n == 0 {
		return
	}
	sx = (sx/n - f.x) * f.strength
	sy = (sy/n - f.y) * f.strength
	for i := range nodes {
		nodes[i].VX -= sx
		nodes[i].VY -= sy
	}
}
