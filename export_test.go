package interpolator

// Export internal state for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// Builds returns how many times the derived state has been rebuilt.
func (in *Interpolator) Builds() int {
	return in.builds
}
