// Command newton-interp computes Newton interpolating polynomials from points
// entered on standard input.
//
// Usage:
//
//	newton-interp                                  # interactive menu
//	newton-interp -mode batch < points.txt         # read n and n pairs, print P(x)
//	newton-interp -points seed.yaml                # seed points from YAML, then menu
//	newton-interp -mode batch -points seed.yaml -v # print P(x) with debug logging
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	interpolator "github.com/tphakala/go-newton-interpolator"
	"github.com/tphakala/go-newton-interpolator/internal/console"
)

// options holds parsed command-line flags.
type options struct {
	mode          string
	pointsPath    string
	conditionWarn float64
	verbose       bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, opts.verbose)
	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("newton-interp", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.mode, "mode", defaultMode, "Session mode: batch, interactive")
	fs.StringVar(&opts.pointsPath, "points", "", "YAML file with seed points (skips point entry)")
	fs.Float64Var(&opts.conditionWarn, "cond-warn", defaultConditionWarn, "Warn when the Vandermonde condition number exceeds this (0 disables)")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch opts.mode {
	case modeBatch, modeInteractive:
	default:
		return nil, fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, modeBatch, modeInteractive)
	}
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func run(opts *options, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	interp, err := interpolator.New(&interpolator.Config{
		Logger:                 &logger,
		ConditionWarnThreshold: opts.conditionWarn,
	})
	if err != nil {
		return err
	}

	session := console.NewSession(stdin, stdout, interp)

	if opts.pointsPath != "" {
		xs, ys, err := loadPointsFile(opts.pointsPath)
		if err != nil {
			return err
		}
		for i := range xs {
			if _, err := interp.AddPoint(xs[i], ys[i]); err != nil {
				return fmt.Errorf("point %d in %s: %w", i, opts.pointsPath, err)
			}
		}
		logger.Info().Str("file", opts.pointsPath).Int("samples", interp.Len()).Msg("loaded seed points")
		session.SkipPointEntry()
	}

	if opts.mode == modeBatch {
		if err := session.RunBatch(); err != nil {
			return err
		}
		if e := logger.Debug(); e.Enabled() {
			e.Float64("condition", interp.Condition()).Int("samples", interp.Len()).Msg("batch complete")
		}
		return nil
	}
	return session.RunInteractive()
}
