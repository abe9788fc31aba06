package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		want string
	}{
		{"Empty", Polynomial{}, "0"},
		{"All suppressed", Polynomial{1e-12, -5e-11, 0}, "0"},
		{"Pure square", Polynomial{0, 0, 1}, "x^2"},
		{"Square plus one", Polynomial{1, 0, 1}, "x^2 + 1"},
		{"Unit constant printed", Polynomial{1}, "1"},
		{"Negative unit constant", Polynomial{-1}, "-1"},
		{"Leading negative", Polynomial{0, 0, -1}, "-x^2"},
		{"Linear term has no exponent", Polynomial{0, 1}, "x"},
		{"Non-unit coefficients", Polynomial{0.5, -3, 2}, "2*x^2 - 3*x + 0.5"},
		{"Mixed signs", Polynomial{-4, 1, 0, -2.5}, "-2.5*x^3 + x - 4"},
		{"Suppresses near-zero middle", Polynomial{2, 1e-13, 1}, "x^2 + 2"},
		{"Near-unit elided", Polynomial{0, 1 + 1e-12}, "x"},
		{"Six significant digits", Polynomial{1.0 / 3}, "0.333333"},
		{"Large magnitude", Polynomial{0, 2e7}, "2e+07*x"},
		{"Negative constant after terms", Polynomial{-1, 0, 1}, "x^2 - 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.p))
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestRender_DoesNotTrimStorage(t *testing.T) {
	p := Polynomial{1, 0, 1e-15}
	assert.Equal(t, "1", Render(p))
	assert.Len(t, p, 3)
	assert.Equal(t, 2, p.Degree())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10", FormatNumber(10))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
	assert.Equal(t, "1e+06", FormatNumber(1e6))
	assert.Equal(t, "123457", FormatNumber(123456.7))
}
