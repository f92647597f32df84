package layout

// Force changes node velocities based on the current node positions.
//
// Forces of a Simulation are applied one after another in the order they were
// added, each with exclusive access to the whole node slice. All forces of a
// tick see the same positions, positions only change when the simulation
// integrates after the last force. Velocities however are shared: a force
// sees the velocity contributions of every force applied before it in the
// same tick. Implementations must add to VX/VY and never overwrite them.
type Force interface {
	Apply(nodes []Node)
}

// ForceFunc adapts an ordinary function to the Force interface.
type ForceFunc func(nodes []Node)

func (f ForceFunc) Apply(nodes []Node) {
	f(nodes)
}

func constant(v float64) func(int) float64 {
	return func(int) float64 { return v }
}
