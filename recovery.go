package combi

// The parsers in this file are meant as fallbacks for RecoverWith.
//
// There is no silver bullet strategy for error recovery. By definition, if
// the input to a parser is invalid then the parser can only make educated
// guesses as to the meaning of the input. Different strategies work better
// for different languages, and for different constructs within them.
//
// eg.
//
//	stmt := RecoverWith(statement, SkipPast[rune, string]([]rune{';'}, func(Span) Stmt { return BadStmt{} }))

// SkipUntil skips tokens until one of "sync" is next, without consuming it.
//
// This is the classic "panic mode" recovery strategy. It fails if the end of
// input is reached first.
func SkipUntil[T comparable, L, O any](sync []T, fallback func(Span) O) Parser[T, L, O] {
	return skipTo[T, L, O](sync, false, fallback)
}

// SkipPast skips tokens up to and including the next one in "sync".
func SkipPast[T comparable, L, O any](sync []T, fallback func(Span) O) Parser[T, L, O] {
	return skipTo[T, L, O](sync, true, fallback)
}

func skipTo[T comparable, L, O any](sync []T, consume bool, fallback func(Span) O) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		start := inp.Save()
		for {
			before := inp.Save()
			tok, ok := inp.Next()
			if !ok {
				var zero O
				return zero, expect(inp, before, tok, ok)
			}
			if contains(sync, tok) {
				if !consume {
					inp.Rewind(before)
				}
				return Bind(mode, func() O { return fallback(inp.SpanSince(start)) }), nil
			}
		}
	})
}

// NestedDelimiters skips a balanced region starting with "open" and ending
// with the matching "closing".
//
// Pairs in "others" are also kept balanced within the region, so that eg.
// brackets nested inside parentheses are skipped correctly. A mismatched
// closing delimiter, or the end of input, fails.
func NestedDelimiters[T comparable, L, O any](open, closing T, others [][2]T, fallback func(Span) O) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		var zero O
		start := inp.Save()
		tok, ok := inp.Next()
		if !ok || tok != open {
			return zero, expect(inp, start, tok, ok, Describe(any(open)))
		}
		// Expected closers, innermost last.
		stack := []T{closing}
		for len(stack) > 0 {
			before := inp.Save()
			tok, ok := inp.Next()
			if !ok {
				return zero, expect(inp, before, tok, ok, Describe(any(stack[len(stack)-1])))
			}
			switch {
			case tok == stack[len(stack)-1]:
				stack = stack[:len(stack)-1]
			case tok == open:
				stack = append(stack, closing)
			case tok == closing:
				return zero, expect(inp, before, tok, ok, Describe(any(stack[len(stack)-1])))
			default:
				for _, pair := range others {
					if tok == pair[0] {
						stack = append(stack, pair[1])
						break
					}
					if tok == pair[1] {
						return zero, expect(inp, before, tok, ok, Describe(any(stack[len(stack)-1])))
					}
				}
			}
		}
		return Bind(mode, func() O { return fallback(inp.SpanSince(start)) }), nil
	})
}

// RetryUntil is the parser returned by SkipThenRetryUntil.
type RetryUntil[T comparable, L, O any] struct {
	p       Parser[T, L, O]
	until   []T
	maxSkip int
}

// SkipThenRetryUntil skips one token at a time, retrying "p" after each,
// until "p" succeeds.
//
// It gives up when one of "until" is next, at end of input, or after
// skipping 100 tokens.
func SkipThenRetryUntil[T comparable, L, O any](p Parser[T, L, O], until ...T) RetryUntil[T, L, O] {
	return RetryUntil[T, L, O]{p: p, until: until, maxSkip: 100}
}

// MaxSkip sets the maximum number of tokens to skip. Zero means no limit.
func (r RetryUntil[T, L, O]) MaxSkip(n int) RetryUntil[T, L, O] {
	r.maxSkip = n
	return r
}

// Parse implements Parser.
func (r RetryUntil[T, L, O]) Parse(inp *Stream[T, L], mode Mode) (O, *Located) {
	var zero O
	for skipped := 0; r.maxSkip <= 0 || skipped < r.maxSkip; skipped++ {
		before := inp.Save()
		tok, ok := inp.Next()
		if !ok || contains(r.until, tok) {
			lerr := expect(inp, before, tok, ok)
			inp.Rewind(before)
			return zero, lerr
		}
		retry := inp.Save()
		out, err := r.p.Parse(inp, mode)
		if err == nil {
			return out, nil
		}
		inp.Rewind(retry)
	}
	before := inp.Save()
	tok, ok := inp.Peek()
	return zero, At(before.offset, &UnexpectedError{Found: foundOrNil(tok, ok), EOF: !ok, At: inp.SpanSince(before)})
}

func foundOrNil[T any](tok T, ok bool) any {
	if !ok {
		return nil
	}
	return tok
}

func contains[T comparable](set []T, tok T) bool {
	for _, s := range set {
		if s == tok {
			return true
		}
	}
	return false
}
