package trackgeom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/runlog/internal/units"
)

func TestSolveRightUnitTriangleDegenerate(t *testing.T) {
	a, b := SolveRightUnitTriangle(0, math.Pi/8)
	assert.Zero(t, a)
	assert.Zero(t, b)

	a, b = SolveRightUnitTriangle(0.01, 0)
	assert.Equal(t, units.Radians(0.01), a)
	assert.Zero(t, b)
}

func TestSolveRightUnitTriangle(t *testing.T) {
	a, b := SolveRightUnitTriangle(math.Pi/64, math.Pi/8)
	assert.InDelta(t, 0.04535616343012726, float64(a), 1e-9)
	assert.InDelta(t, 0.018778489658702033, float64(b), 1e-9)

	// Spherical Pythagoras: cos c = cos a · cos b.
	assert.InDelta(t, math.Cos(math.Pi/64), math.Cos(float64(a))*math.Cos(float64(b)), 1e-12)
}

func TestSolveRightUnitTriangleNeverNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		c := units.Radians(rng.Float64() * 1e-4)
		B := units.Radians(rng.Float64() * math.Pi / 2)
		a, b := SolveRightUnitTriangle(c, B)
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
			t.Fatalf("SolveRightUnitTriangle(%g, %g) = (%g, %g)", c, B, a, b)
		}
	}
}

func TestSolveRightUnitTriangleShortHypotenuse(t *testing.T) {
	// one metre on the mean sphere
	c := units.Radians(1 / 6371008.771415)
	a, b := SolveRightUnitTriangle(c, math.Pi/4)
	assert.InDelta(t, float64(c)*math.Sqrt2/2, float64(a), float64(c)*1e-9)
	assert.InDelta(t, float64(c)*math.Sqrt2/2, float64(b), float64(c)*1e-9)
}
