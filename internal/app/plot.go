package app

import (
	"github.com/guptarohit/asciigraph"
)

// PlotEnergy renders the kinetic energy per tick as an ascii chart.
func PlotEnergy(energy []float64) string {
	return asciigraph.Plot(energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("kinetic energy per tick"),
	)
}
