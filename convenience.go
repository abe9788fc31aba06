package interpolator

import (
	"fmt"

	"github.com/tphakala/go-newton-interpolator/internal/points"
)

// NewDefault creates an empty interpolator with DefaultConfig.
func NewDefault() *Interpolator {
	in, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates
		panic(err)
	}
	return in
}

// NewFromSamples creates an interpolator seeded with the given samples.
// Samples are added in order, so a later duplicate x overwrites an earlier one.
func NewFromSamples(xs, ys []float64, config *Config) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	in, err := New(config)
	if err != nil {
		return nil, err
	}
	for i := range xs {
		if _, err := in.AddPoint(xs[i], ys[i]); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return in, nil
}

// Interpolate returns the standard-form polynomial through (xs[i], ys[i]).
//
// This is the one-shot batch path. Samples are collected exactly as
// AddPoint would collect them (sorted, later duplicates overwrite earlier
// ones) and the polynomial is computed once.
func Interpolate(xs, ys []float64) (Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	store := points.NewStore()
	for i := range xs {
		if _, err := store.Add(xs[i], ys[i]); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	d := build(store.Snapshot())
	if d.err != nil {
		return nil, d.err
	}
	return d.poly, nil
}

// Evaluate returns p(x) using Horner's method.
func Evaluate(p Polynomial, x float64) float64 {
	return p.Evaluate(x)
}

// Render formats p highest degree first, omitting terms below Epsilon.
func Render(p Polynomial) string {
	return p.String()
}
