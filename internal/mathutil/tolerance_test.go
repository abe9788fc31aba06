package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualWithinEpsilon(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"Identical", 5, 5, true},
		{"Below tolerance", 1, 1 + 5e-11, true},
		{"Above tolerance", 1, 1 + 1e-9, false},
		{"Exactly tolerance", 0, Epsilon, false},
		{"Negative values", -3, -3 - 1e-11, true},
		{"Opposite signs", 1e-11, -1e-11, true},
		{"Far apart", 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualWithinEpsilon(tt.a, tt.b))
			assert.Equal(t, tt.want, EqualWithinEpsilon(tt.b, tt.a), "comparison must be symmetric")
		})
	}
}

func TestNegligibleCoefficient(t *testing.T) {
	assert.True(t, NegligibleCoefficient(0))
	assert.True(t, NegligibleCoefficient(-9e-11))
	assert.False(t, NegligibleCoefficient(1e-10))
	assert.False(t, NegligibleCoefficient(-0.5))
}

func TestUnitMagnitude(t *testing.T) {
	assert.True(t, UnitMagnitude(1))
	assert.True(t, UnitMagnitude(-1))
	assert.True(t, UnitMagnitude(1+1e-12))
	assert.False(t, UnitMagnitude(1.001))
	assert.False(t, UnitMagnitude(0))
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite(nil))
	assert.True(t, AllFinite([]float64{0, -1, 1e300}))
	assert.False(t, AllFinite([]float64{1, math.NaN()}))
	assert.False(t, AllFinite([]float64{math.Inf(-1), 2}))

	assert.True(t, IsFinite(3))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.NaN()))
}

func TestVandermondeCond(t *testing.T) {
	assert.InDelta(t, 1.0, VandermondeCond(nil), 0)
	assert.InDelta(t, 1.0, VandermondeCond([]float64{42}), 0)

	spread := VandermondeCond([]float64{0, 1, 2, 3})
	clustered := VandermondeCond([]float64{1, 1.0001, 1.0002, 1.0003})
	assert.Greater(t, spread, 1.0)
	assert.Greater(t, clustered, spread, "clustered abscissae should be worse conditioned")
}

func BenchmarkVandermondeCond(b *testing.B) {
	xs := make([]float64, 16)
	for i := range xs {
		xs[i] = float64(i) / 4
	}
	for b.Loop() {
		_ = VandermondeCond(xs)
	}
}
