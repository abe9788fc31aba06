package main

// Session modes
const (
	modeBatch       = "batch"
	modeInteractive = "interactive"
)

// Default command-line flag values
const (
	defaultMode          = modeInteractive
	defaultConditionWarn = 1e12 // Vandermonde condition number warning level
)
