package poly

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-newton-interpolator/internal/testutil"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Polynomial
		want   Polynomial
	}{
		{"Same length", Polynomial{1, 2}, Polynomial{3, 4}, Polynomial{4, 6}},
		{"Pads shorter right", Polynomial{1, 2, 3}, Polynomial{1}, Polynomial{2, 2, 3}},
		{"Pads shorter left", Polynomial{5}, Polynomial{0, 0, 7}, Polynomial{5, 0, 7}},
		{"Both empty", Polynomial{}, nil, Polynomial{}},
		{"Keeps cancelled leading term", Polynomial{1, 1}, Polynomial{0, -1}, Polynomial{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.p1, tt.p2))
		})
	}
}

func TestAdd_CommutativeAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		a, b, c := randomPoly(rng, 6), randomPoly(rng, 4), randomPoly(rng, 9)

		testutil.AssertAllClose(t, Add(a, b), Add(b, a), 1e-12)
		testutil.AssertAllClose(t, Add(Add(a, b), c), Add(a, Add(b, c)), 1e-12)
	}
}

func TestAdd_DoesNotModifyArguments(t *testing.T) {
	p1 := Polynomial{1, 2}
	p2 := Polynomial{3}
	_ = Add(p1, p2)
	assert.Equal(t, Polynomial{1, 2}, p1)
	assert.Equal(t, Polynomial{3}, p2)
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Polynomial
		want   Polynomial
	}{
		{"Identity", Polynomial{3, 0, -2}, One(), Polynomial{3, 0, -2}},
		{"Linear factors", Linear(1), Linear(2), Polynomial{2, -3, 1}},
		{"Scalar", Polynomial{2}, Polynomial{1, 1, 1}, Polynomial{2, 2, 2}},
		{"Square of binomial", Polynomial{1, 1}, Polynomial{1, 1}, Polynomial{1, 2, 1}},
		{"Empty operand", Polynomial{}, Polynomial{1, 2}, Polynomial{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Multiply(tt.p1, tt.p2))
		})
	}
}

func TestMultiply_ResultLength(t *testing.T) {
	for a := 1; a <= 5; a++ {
		for b := 1; b <= 5; b++ {
			got := Multiply(make(Polynomial, a), make(Polynomial, b))
			assert.Len(t, got, a+b-1, "lengths %d and %d", a, b)
		}
	}
}

func TestMultiply_IdentityIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		p := randomPoly(rng, 1+rng.IntN(10))
		assert.Equal(t, p, Multiply(p, One()))
		assert.Equal(t, p, Multiply(One(), p))
	}
}

func TestMultiply_FFTMatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	p1 := randomPoly(rng, minLengthForFFT+17)
	p2 := randomPoly(rng, minLengthForFFT)

	fast := Multiply(p1, p2)
	direct := multiplyDirect(p1, p2)

	require.Len(t, fast, len(p1)+len(p2)-1)
	testutil.AssertAllClose(t, direct, fast, 1e-9)
}

func TestMultiply_FFTExactPowerOfTwo(t *testing.T) {
	// 64 + 65 - 1 = 128 exercises an FFT size equal to the product length.
	p1 := make(Polynomial, minLengthForFFT)
	p2 := make(Polynomial, minLengthForFFT+1)
	for i := range p1 {
		p1[i] = 1
	}
	for i := range p2 {
		p2[i] = float64(i % 3)
	}
	testutil.AssertAllClose(t, multiplyDirect(p1, p2), multiplyFFT(p1, p2), 1e-9)
}

func TestScale(t *testing.T) {
	p := Polynomial{1, -2, 4}
	assert.Equal(t, Polynomial{0.5, -1, 2}, Scale(p, 0.5))
	assert.Equal(t, Polynomial{1, -2, 4}, p, "argument must be untouched")
	assert.Empty(t, Scale(Polynomial{}, 3))
}

func TestDegreeAndClone(t *testing.T) {
	assert.Equal(t, -1, Polynomial{}.Degree())
	assert.Equal(t, 0, One().Degree())
	assert.Equal(t, 2, Polynomial{0, 0, 0}.Degree())

	p := Polynomial{1, 2}
	c := p.Clone()
	c[0] = 9
	assert.InDelta(t, 1.0, p[0], 0)
	assert.Nil(t, Polynomial(nil).Clone())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		x    float64
		want float64
	}{
		{"Empty is zero", Polynomial{}, 7, 0},
		{"Constant", Polynomial{4.5}, -100, 4.5},
		{"x^2 + 1 at 3", Polynomial{1, 0, 1}, 3, 10},
		{"Cubic", Polynomial{-1, 2, 0, 3}, 2, 27},
		{"Negative x", Polynomial{0, 1, 1}, -2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Evaluate(tt.p, tt.x), 1e-12)
			assert.InDelta(t, tt.want, tt.p.Evaluate(tt.x), 1e-12)
		})
	}
}

func TestEvaluate_MatchesPowerSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	p := randomPoly(rng, 8)
	for _, x := range []float64{-1.5, -0.25, 0, 0.75, 1.1} {
		var want float64
		for i, c := range p {
			want += c * math.Pow(x, float64(i))
		}
		testutil.AssertRelativeError(t, want, Evaluate(p, x), 1e-12)
	}
}

func randomPoly(rng *rand.Rand, n int) Polynomial {
	p := make(Polynomial, n)
	for i := range p {
		p[i] = rng.Float64()*2 - 1
	}
	return p
}

func BenchmarkMultiply_Direct(b *testing.B) {
	rng := rand.New(rand.NewPCG(9, 10))
	p1, p2 := randomPoly(rng, 32), randomPoly(rng, 32)
	for b.Loop() {
		_ = Multiply(p1, p2)
	}
}

func BenchmarkMultiply_FFT(b *testing.B) {
	rng := rand.New(rand.NewPCG(11, 12))
	p1, p2 := randomPoly(rng, 512), randomPoly(rng, 512)
	for b.Loop() {
		_ = Multiply(p1, p2)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	rng := rand.New(rand.NewPCG(13, 14))
	p := randomPoly(rng, 20)
	for b.Loop() {
		_ = Evaluate(p, 0.37)
	}
}
