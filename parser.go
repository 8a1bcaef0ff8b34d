package combi

// A Parser consumes tokens of type T from a Stream over an input with slices
// of type L, producing an O.
//
// Parsers are immutable descriptors. They may be invoked any number of times,
// concurrently, over different Streams. All per-parse state lives in the
// Stream.
//
// On success the Stream is positioned after the consumed input. On failure a
// parser returns a Located error; the cursor position is then unspecified
// and callers that continue must rewind to a checkpoint.
type Parser[T, L, O any] interface {
	Parse(inp *Stream[T, L], mode Mode) (O, *Located)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc[T, L, O any] func(inp *Stream[T, L], mode Mode) (O, *Located)

func (f ParserFunc[T, L, O]) Parse(inp *Stream[T, L], mode Mode) (O, *Located) { // nolint: golint
	return f(inp, mode)
}

// ParseResult is the outcome of Run.
type ParseResult[O any] struct {
	// Output of the parser. Only meaningful if OK is true and the parse ran
	// in Emit mode.
	Output O
	OK     bool
	// All errors, non-fatal ones first, followed by the fatal error if the
	// parse failed.
	Errors []*Located
}

// Run "p" over "input" in the given mode.
//
// Run does not require that all input be consumed; combine with End for that.
func Run[T, L, O any](p Parser[T, L, O], input Input[T, L], mode Mode, options ...Option) ParseResult[O] {
	inp := NewStream(input, options...)
	out, err := p.Parse(inp, mode)
	result := ParseResult[O]{Errors: append([]*Located(nil), inp.Errors()...)}
	if err != nil {
		result.Errors = append(result.Errors, err)
		return result
	}
	result.Output = out
	result.OK = true
	return result
}

// Parse "input" with "p", materialising its output.
//
// The returned error is nil, a *Located if the parse failed without
// recovering, or a *RecoveryError if any errors were recovered from. In the
// latter case the output is still valid if the parse as a whole succeeded.
func Parse[T, L, O any](p Parser[T, L, O], input Input[T, L], options ...Option) (O, error) {
	result := Run(p, input, Emit, options...)
	return result.Output, result.err()
}

// Validate "input" against "p" without constructing any output.
func Validate[T, L, O any](p Parser[T, L, O], input Input[T, L], options ...Option) error {
	return Run(p, input, Check, options...).err()
}

func (r ParseResult[O]) err() error {
	switch {
	case len(r.Errors) == 0:
		return nil
	case len(r.Errors) == 1 && !r.OK:
		return r.Errors[0]
	}
	errs := make([]error, 0, len(r.Errors))
	for _, err := range r.Errors {
		errs = append(errs, err)
	}
	return &RecoveryError{Errors: errs}
}
