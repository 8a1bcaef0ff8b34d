package combi

import (
	"fmt"
	"strconv"
	"strings"
)

// Error is a parse failure.
type Error interface {
	error
	// Span of input the error covers.
	Span() Span
}

// Merger is implemented by errors that can absorb another error raised at the
// same position, typically by competing alternatives of a choice.
type Merger interface {
	Merge(other Error) Error
}

// UnexpectedError is returned when the input does not match what was expected.
//
// An UnexpectedError with neither Expected nor Found set is a bare predicate
// rejection, as produced by Filter.
type UnexpectedError struct {
	// Descriptions of what would have been accepted.
	Expected []string
	// The token that was found instead, if any.
	Found any
	// True if the failure occurred at end of input.
	EOF bool
	At  Span
}

// Unexpected creates an UnexpectedError for a found token.
func Unexpected(at Span, found any, expected ...string) *UnexpectedError {
	return &UnexpectedError{Expected: expected, Found: found, At: at}
}

// UnexpectedEOF creates an UnexpectedError at end of input.
func UnexpectedEOF(at Span, expected ...string) *UnexpectedError {
	return &UnexpectedError{Expected: expected, EOF: true, At: at}
}

func (u *UnexpectedError) Span() Span { return u.At } // nolint: golint

// Message without positional information.
func (u *UnexpectedError) Message() string {
	var found string
	switch {
	case u.EOF:
		found = "unexpected end of input"
	case u.Found != nil:
		found = "unexpected " + Describe(u.Found)
	default:
		found = "unexpected input"
	}
	if len(u.Expected) == 0 {
		return found
	}
	return fmt.Sprintf("%s (expected %s)", found, strings.Join(u.Expected, " or "))
}

func (u *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %s", u.At, u.Message())
}

// Merge the expectations of two errors raised at the same position.
func (u *UnexpectedError) Merge(other Error) Error {
	o, ok := other.(*UnexpectedError)
	if !ok {
		return u
	}
	merged := &UnexpectedError{
		Found: u.Found,
		EOF:   u.EOF,
		At:    u.At,
	}
	if merged.Found == nil && !merged.EOF {
		merged.Found, merged.EOF = o.Found, o.EOF
	}
	seen := map[string]bool{}
	for _, expected := range [][]string{u.Expected, o.Expected} {
		for _, e := range expected {
			if !seen[e] {
				seen[e] = true
				merged.Expected = append(merged.Expected, e)
			}
		}
	}
	if o.At.End > merged.At.End {
		merged.At.End = o.At.End
	}
	return merged
}

// CustomError is a user-raised error, eg. from the function passed to TryMap.
type CustomError struct {
	Err error
	At  Span
}

// Custom wraps a user error. Errors that already implement Error are
// returned unmodified.
func Custom(at Span, err error) Error {
	if perr, ok := err.(Error); ok {
		return perr
	}
	return &CustomError{Err: err, At: at}
}

// Errorf creates a new CustomError covering "at".
func Errorf(at Span, format string, args ...any) Error {
	return &CustomError{Err: fmt.Errorf(format, args...), At: at}
}

func (c *CustomError) Span() Span    { return c.At }
func (c *CustomError) Error() string { return fmt.Sprintf("%s: %s", c.At, c.Err) }
func (c *CustomError) Unwrap() error { return c.Err }

// Located pairs an error with the offset at which it was raised.
//
// Choice combinators compare the Pos of competing failures to decide which
// is the more informative.
type Located struct {
	Pos int
	Err Error
}

// At creates a Located error.
func At(pos int, err Error) *Located {
	return &Located{Pos: pos, Err: err}
}

func (l *Located) Error() string { return l.Err.Error() }
func (l *Located) Unwrap() error { return l.Err }

// MergeFunc decides which of two failed alternatives to report.
type MergeFunc func(a, b *Located) *Located

// Prioritize is the default MergeFunc.
//
// The error that progressed furthest wins. On a tie errors implementing
// Merger are merged, otherwise the left error wins.
func Prioritize(a, b *Located) *Located {
	switch {
	case a.Pos > b.Pos:
		return a
	case b.Pos > a.Pos:
		return b
	}
	if m, ok := a.Err.(Merger); ok {
		return &Located{Pos: a.Pos, Err: m.Merge(b.Err)}
	}
	return a
}

// RecoveryError aggregates all errors of a parse that recovered at least once.
type RecoveryError struct {
	Errors []error
}

func (r *RecoveryError) Error() string {
	if len(r.Errors) == 0 {
		return "no errors"
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap returns all aggregated errors for errors.Is/As.
func (r *RecoveryError) Unwrap() []error {
	return r.Errors
}

// Describe formats a token for use in error messages.
func Describe(tok any) string {
	switch tok := tok.(type) {
	case rune:
		return strconv.QuoteRune(tok)
	case byte:
		return strconv.QuoteRune(rune(tok))
	case string:
		return strconv.Quote(tok)
	case fmt.Stringer:
		return strconv.Quote(tok.String())
	default:
		return fmt.Sprintf("%v", tok)
	}
}
