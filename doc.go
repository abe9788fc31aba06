// Package interpolator computes the unique polynomial of minimal degree
// through a set of (x, y) samples using Newton's divided differences, and
// converts it to standard power-basis form for evaluation and display.
//
// # Quick Start
//
// For one-shot interpolation:
//
//	p, err := interpolator.Interpolate([]float64{0, 1, 2}, []float64{1, 2, 5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p)              // x^2 + 1
//	fmt.Println(p.Evaluate(3))  // 10
//
// For an incrementally growing sample set:
//
//	in := interpolator.NewDefault()
//	in.AddPoint(1, 1)
//	in.AddPoint(3, 9)
//	in.AddPoint(2, 4)
//	s, _ := in.Render()         // x^2
//
// # Samples
//
// Samples are kept strictly ascending in x. Adding a sample whose x lies
// within [Epsilon] of an existing one replaces that sample's y instead of
// inserting; AddPoint reports this through its updated result. NaN and
// infinite coordinates are rejected with [ErrNonFinite].
//
// # Lazy Recompute
//
// The divided-difference table and the standard-form polynomial are derived
// values. They are rebuilt from an immutable snapshot of the samples the
// first time they are read after a change, and reused until the next change.
//
// # Numerical Notes
//
// Divided differences are numerically well behaved, but expanding the Newton
// form into the power basis can lose digits through cancellation when there
// are many samples or the abscissae are clustered. This is inherent to the
// standard form. [Interpolator.Condition] reports the Vandermonde condition
// number, and a warning is logged above [Config.ConditionWarnThreshold].
//
// Abscissae closer than Epsilon, or divided differences that overflow, are
// reported as [ErrDegenerateSamples] rather than propagated as Inf or NaN.
//
// Stored coefficients are never trimmed. Terms below Epsilon are only hidden
// when rendering.
//
// # Thread Safety
//
// An [Interpolator] is not safe for concurrent use. Callers sharing one
// instance across goroutines must serialize access.
package interpolator
