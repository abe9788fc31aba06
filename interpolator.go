package interpolator

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
	"github.com/tphakala/go-newton-interpolator/internal/mathutil"
	"github.com/tphakala/go-newton-interpolator/internal/newton"
	"github.com/tphakala/go-newton-interpolator/internal/points"
	"github.com/tphakala/go-newton-interpolator/internal/poly"
)

// Polynomial is a power-basis polynomial in ascending-degree order.
type Polynomial = poly.Polynomial

// Table is a divided-difference table.
type Table = newton.Table

// Snapshot is an immutable copy of the sample set at one version.
type Snapshot = points.Snapshot

// Common errors returned by the interpolator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid interpolator configuration")

	// ErrNonFinite indicates a NaN or infinite sample coordinate.
	ErrNonFinite = points.ErrNonFinite

	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = newton.ErrLengthMismatch

	// ErrDegenerateSamples indicates coincident abscissae or a divided
	// difference that is not finite.
	ErrDegenerateSamples = newton.ErrDegenerateSamples
)

// Config holds interpolator configuration.
type Config struct {
	// Logger receives duplicate-x notices, recompute events and
	// conditioning warnings. Nil disables logging.
	Logger *zerolog.Logger

	// ConditionWarnThreshold is the Vandermonde condition number above which
	// a warning is logged after each recompute. Zero disables the check.
	ConditionWarnThreshold float64
}

// DefaultConfig returns a Config with logging disabled and the default
// conditioning threshold.
func DefaultConfig() *Config {
	return &Config{
		ConditionWarnThreshold: DefaultConditionWarnThreshold,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(c.ConditionWarnThreshold) || c.ConditionWarnThreshold < 0 {
		return fmt.Errorf("%w: condition warn threshold must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Interpolator maintains a sample set and lazily derives the Newton
// interpolating polynomial from it.
//
// The derived table and polynomial are memoized against the store version
// and rebuilt on first read after any AddPoint. Calls on one instance must be
// serialized by the caller.
type Interpolator struct {
	store    *points.Store
	logger   zerolog.Logger
	condWarn float64

	cached *derived
	builds int
}

// derived is everything computed from one store version.
type derived struct {
	version uint64
	table   *newton.Table
	poly    poly.Polynomial
	err     error
}

// New creates an empty interpolator.
func New(config *Config) (*Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Interpolator{
		store:    points.NewStore(),
		logger:   logger,
		condWarn: config.ConditionWarnThreshold,
	}, nil
}

// AddPoint adds the sample (x, y).
//
// If a sample with x within Epsilon already exists its y is replaced and
// updated is true; the sample count is unchanged. Either way the cached
// polynomial becomes stale.
func (in *Interpolator) AddPoint(x, y float64) (updated bool, err error) {
	updated, err = in.store.Add(x, y)
	if err != nil {
		return false, err
	}

	if updated {
		in.logger.Info().Float64("x", x).Float64("y", y).Msg("x value already exists, updating y value")
	} else {
		in.logger.Debug().Float64("x", x).Float64("y", y).Int("samples", in.store.Len()).Msg("point added")
	}
	return updated, nil
}

// Len returns the number of samples.
func (in *Interpolator) Len() int {
	return in.store.Len()
}

// Version returns the sample set version, bumped on every AddPoint.
func (in *Interpolator) Version() uint64 {
	return in.store.Version()
}

// Samples returns an immutable copy of the current samples, ascending in x.
func (in *Interpolator) Samples() Snapshot {
	return in.store.Snapshot()
}

// Polynomial returns the standard-form interpolating polynomial.
// With n samples it has exactly n coefficients; with none it is empty.
// The returned slice is a copy.
func (in *Interpolator) Polynomial() (Polynomial, error) {
	d := in.current()
	if d.err != nil {
		return nil, d.err
	}
	return d.poly.Clone(), nil
}

// Table returns the divided-difference table for the current samples.
func (in *Interpolator) Table() (*Table, error) {
	d := in.current()
	if d.err != nil {
		return nil, d.err
	}
	return d.table, nil
}

// Evaluate returns P(x).
func (in *Interpolator) Evaluate(x float64) (float64, error) {
	d := in.current()
	if d.err != nil {
		return 0, d.err
	}
	return poly.Evaluate(d.poly, x), nil
}

// Render returns the polynomial in human-readable form, e.g. "x^2 + 1".
func (in *Interpolator) Render() (string, error) {
	d := in.current()
	if d.err != nil {
		return "", d.err
	}
	return poly.Render(d.poly), nil
}

// WriteTable writes the divided-difference table to w.
func (in *Interpolator) WriteTable(w io.Writer) error {
	d := in.current()
	if d.err != nil {
		return d.err
	}
	return newton.WriteTable(w, d.table)
}

// Condition returns the Vandermonde condition number of the current abscissae.
func (in *Interpolator) Condition() float64 {
	return mathutil.VandermondeCond(in.store.Snapshot().X)
}

// current returns the derived state for the store's version, rebuilding it
// when stale.
func (in *Interpolator) current() *derived {
	version := in.store.Version()
	if in.cached != nil && in.cached.version == version {
		return in.cached
	}

	snap := in.store.Snapshot()
	in.cached = build(snap)
	in.builds++

	if in.cached.err != nil {
		in.logger.Error().Err(in.cached.err).Uint64("version", version).Msg("interpolation failed")
		return in.cached
	}

	in.logger.Debug().Int("samples", snap.Len()).Uint64("version", version).Msg("polynomial recomputed")
	in.checkConditioning(snap.X)
	return in.cached
}

func (in *Interpolator) checkConditioning(xs []float64) {
	if in.condWarn == 0 || len(xs) < minSamplesForCondition {
		return
	}
	if cond := mathutil.VandermondeCond(xs); cond > in.condWarn {
		in.logger.Warn().
			Float64("condition", cond).
			Int("samples", len(xs)).
			Msg("sample set is ill-conditioned, standard-form coefficients may lose precision")
	}
}

// build derives the table and polynomial from a snapshot. It is a pure
// function of its argument.
func build(snap Snapshot) *derived {
	table, err := newton.BuildTable(snap.X, snap.Y)
	if err != nil {
		return &derived{version: snap.Version, err: fmt.Errorf("interpolating %d samples: %w", snap.Len(), err)}
	}
	return &derived{
		version: snap.Version,
		table:   table,
		poly:    table.StandardForm(),
	}
}
