package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClose(t *testing.T) {
	for _, test := range []struct {
		Name string
		A, B float64
		Exp  bool
	}{
		{Name: "equal", A: 1, B: 1, Exp: true},
		{Name: "within tolerance", A: 0.001, B: 0.001 + 1e-6, Exp: true},
		{Name: "outside tolerance", A: 0, B: 1e-4, Exp: false},
		{Name: "NaN", A: math.NaN(), B: 0, Exp: false},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Exp, isClose(test.A, test.B))
		})
	}
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, clamp(0.5, 1.0, 2.0))
	assert.Equal(2.0, clamp(3.0, 1.0, 2.0))
	assert.Equal(1.5, clamp(1.5, 1.0, 2.0))
	assert.True(math.IsNaN(clamp(math.NaN(), 1.0, 2.0)))
}
