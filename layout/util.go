package layout

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Float](in, lo, hi T) T {
	if math.IsNaN(float64(in)) {
		return in
	}
	if in > hi {
		return hi
	} else if in < lo {
		return lo
	}
	return in
}

func isClose(a, b float64) bool {
	absTol := 1e-5
	return math.Abs(a-b) <= absTol
}
