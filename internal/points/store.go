// Package points maintains an ordered, de-duplicated set of interpolation
// samples.
package points

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tphakala/go-newton-interpolator/internal/mathutil"
)

// ErrNonFinite indicates a NaN or infinite coordinate.
var ErrNonFinite = errors.New("non-finite sample coordinate")

// Store keeps samples strictly ascending in x with no two abscissae within
// Epsilon of each other. Every successful mutation bumps the version.
//
// A Store is not safe for concurrent use.
type Store struct {
	xs      []float64
	ys      []float64
	version uint64
}

// Snapshot is an immutable view of a Store at one version.
// X and Y are index-aligned and owned by the snapshot.
type Snapshot struct {
	X       []float64
	Y       []float64
	Version uint64
}

// Len returns the number of samples in the snapshot.
func (s Snapshot) Len() int {
	return len(s.X)
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts (x, y), keeping x ascending.
//
// If an existing abscissa lies within Epsilon of x, its y is overwritten
// instead and updated is true; the sample count does not change.
func (s *Store) Add(x, y float64) (updated bool, err error) {
	if !mathutil.IsFinite(x) || !mathutil.IsFinite(y) {
		return false, fmt.Errorf("%w: (%g, %g)", ErrNonFinite, x, y)
	}

	pos := sort.SearchFloat64s(s.xs, x)

	// Only the neighbours of the insertion point can be within Epsilon.
	for _, i := range [2]int{pos - 1, pos} {
		if i >= 0 && i < len(s.xs) && mathutil.EqualWithinEpsilon(s.xs[i], x) {
			s.ys[i] = y
			s.version++
			return true, nil
		}
	}

	s.xs = insertAt(s.xs, pos, x)
	s.ys = insertAt(s.ys, pos, y)
	s.version++
	return false, nil
}

// Len returns the number of stored samples.
func (s *Store) Len() int {
	return len(s.xs)
}

// Version returns a counter incremented on every successful Add.
func (s *Store) Version() uint64 {
	return s.version
}

// Snapshot returns a copy of the current samples.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		X:       append([]float64{}, s.xs...),
		Y:       append([]float64{}, s.ys...),
		Version: s.version,
	}
}

func insertAt(s []float64, pos int, v float64) []float64 {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}
