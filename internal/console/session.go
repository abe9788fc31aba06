// Package console implements the line-oriented batch and interactive
// front ends of the interpolator.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	interpolator "github.com/tphakala/go-newton-interpolator"
	"github.com/tphakala/go-newton-interpolator/internal/poly"
)

// ErrMalformedInput indicates a token that is not a valid number.
var ErrMalformedInput = errors.New("malformed numeric input")

// Session reads whitespace-separated tokens from an input stream and drives
// one Interpolator, writing prompts and results to an output stream.
type Session struct {
	interp *interpolator.Interpolator
	tokens *bufio.Scanner
	out    io.Writer
	err    error // first write error

	skipEntry bool
}

// NewSession creates a session over r and w for interp.
func NewSession(r io.Reader, w io.Writer, interp *interpolator.Interpolator) *Session {
	tokens := bufio.NewScanner(r)
	tokens.Split(bufio.ScanWords)
	return &Session{
		interp: interp,
		tokens: tokens,
		out:    w,
	}
}

// SkipPointEntry makes RunBatch and RunInteractive use the points already
// held by the interpolator instead of prompting for them.
func (s *Session) SkipPointEntry() {
	s.skipEntry = true
}

// RunBatch reads a point count and that many (x, y) pairs, then prints the
// interpolating polynomial once.
func (s *Session) RunBatch() error {
	s.Banner(batchTitle)
	if err := s.enterPoints(batchCountPrompt); err != nil {
		return err
	}
	s.printf("\nInterpolating polynomial:\n")
	return s.PrintPolynomial()
}

// RunInteractive reads the initial points and then runs the menu loop
// until the user chooses to exit.
func (s *Session) RunInteractive() error {
	s.Banner(interactiveTitle)
	if err := s.enterPoints(initialCountPrompt); err != nil {
		return err
	}
	return s.Menu()
}

func (s *Session) enterPoints(countPrompt string) error {
	if s.skipEntry {
		return s.err
	}
	return s.ReadPoints(countPrompt)
}

// Banner prints a title line and a rule under it.
func (s *Session) Banner(title string) {
	s.printf("%s\n%s\n", title, titleRule)
}

// ReadPoints prompts for a count n and then for n points as x[i]/y[i] pairs.
func (s *Session) ReadPoints(countPrompt string) error {
	s.printf("%s", countPrompt)
	n, err := s.readInt()
	if err != nil {
		return fmt.Errorf("reading point count: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: point count %d is negative", ErrMalformedInput, n)
	}

	s.printf("%s", pointsPrompt)
	for i := range n {
		s.printf("x[%d]: ", i)
		x, err := s.readFloat()
		if err != nil {
			return fmt.Errorf("reading x[%d]: %w", i, err)
		}
		s.printf("y[%d]: ", i)
		y, err := s.readFloat()
		if err != nil {
			return fmt.Errorf("reading y[%d]: %w", i, err)
		}
		if err := s.addPoint(x, y); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return s.err
}

// Menu runs the interactive menu until option 5 or end of input.
func (s *Session) Menu() error {
	for {
		s.printf("%s", menuText)
		if s.err != nil {
			return s.err
		}

		tok, err := s.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := parseDecimalInt(tok)
		if err != nil {
			choice = 0
		}

		switch choice {
		case choiceAddPoint:
			s.menuAddPoint()
		case choicePrintPolynomial:
			s.printf("\nCurrent polynomial:\n")
			s.reportError(s.PrintPolynomial())
		case choiceEvaluate:
			s.menuEvaluate()
		case choicePrintTable:
			s.reportError(s.interp.WriteTable(s.out))
		case choiceExit:
			s.printf("Exiting...\n")
			return s.err
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
	}
}

// PrintPolynomial prints "P(x) = <rendered polynomial>".
func (s *Session) PrintPolynomial() error {
	rendered, err := s.interp.Render()
	if err != nil {
		return err
	}
	s.printf("P(x) = %s\n", rendered)
	return s.err
}

func (s *Session) menuAddPoint() {
	s.printf("Enter new point (x y): ")
	x, err := s.readFloat()
	if s.recoverInput(err) {
		return
	}
	y, err := s.readFloat()
	if s.recoverInput(err) {
		return
	}
	if err := s.addPoint(x, y); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Point added successfully.\n")
}

func (s *Session) menuEvaluate() {
	s.printf("Enter x value to evaluate: ")
	x, err := s.readFloat()
	if s.recoverInput(err) {
		return
	}
	v, err := s.interp.Evaluate(x)
	if err != nil {
		s.reportError(err)
		return
	}
	s.printf("P(%s) = %s\n", poly.FormatNumber(x), poly.FormatNumber(v))
}

// addPoint adds a sample and prints the duplicate notice when x was known.
func (s *Session) addPoint(x, y float64) error {
	updated, err := s.interp.AddPoint(x, y)
	if err != nil {
		return err
	}
	if updated {
		s.printf("Warning: x value %s already exists. Updating y value.\n", poly.FormatNumber(x))
	}
	return nil
}

// recoverInput reports a malformed token inside a menu operation and
// returns true if the operation should be abandoned.
func (s *Session) recoverInput(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedInput) {
		s.printf("Invalid input: %v\n", err)
		return true
	}
	s.reportError(err)
	return true
}

func (s *Session) reportError(err error) {
	if err != nil {
		s.printf("Error: %v\n", err)
	}
}

func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}

// next returns the next whitespace-separated token, or io.EOF.
func (s *Session) next() (string, error) {
	if s.tokens.Scan() {
		return s.tokens.Text(), nil
	}
	if err := s.tokens.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *Session) readFloat() (float64, error) {
	tok, err := s.next()
	if err != nil {
		return 0, eofAsUnexpected(err)
	}
	v, err := cast.ToFloat64E(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, tok)
	}
	return v, nil
}

func (s *Session) readInt() (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, eofAsUnexpected(err)
	}
	v, err := parseDecimalInt(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, tok)
	}
	return v, nil
}

// parseDecimalInt reads tok as a base-10 integer with an optional sign.
// A leading zero is padding, not an octal prefix, and 0x/0b forms are rejected.
func parseDecimalInt(tok string) (int, error) {
	sign, digits := "", tok
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		if digits[0] == '-' {
			sign = "-"
		}
		digits = digits[1:]
	}
	if digits == "" || strings.Trim(digits, decimalDigits) != "" {
		return 0, fmt.Errorf("%q is not a decimal integer", tok)
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return cast.ToIntE(sign + digits)
}

func eofAsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
