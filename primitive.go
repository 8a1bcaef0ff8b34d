package combi

// expect produces the error for a token that failed to match, or for end of
// input, at the cursor position "before".
func expect[T, L any](inp *Stream[T, L], before Checkpoint, tok T, ok bool, expected ...string) *Located {
	if !ok {
		return At(before.offset, UnexpectedEOF(inp.SpanSince(before), expected...))
	}
	return At(before.offset, Unexpected(inp.SpanSince(before), any(tok), expected...))
}

// Any matches a single token.
func Any[T, L any]() Parser[T, L, T] {
	return ParserFunc[T, L, T](func(inp *Stream[T, L], mode Mode) (T, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if !ok {
			var zero T
			return zero, expect(inp, before, tok, ok, "any token")
		}
		return tok, nil
	})
}

// Just matches a single token equal to "want".
func Just[T comparable, L any](want T) Parser[T, L, T] {
	expected := Describe(want)
	return ParserFunc[T, L, T](func(inp *Stream[T, L], mode Mode) (T, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if !ok || tok != want {
			var zero T
			return zero, expect(inp, before, tok, ok, expected)
		}
		return tok, nil
	})
}

// Seq matches an exact sequence of tokens, producing the matched slice of
// input.
func Seq[T comparable, L any](want ...T) Parser[T, L, L] {
	expected := make([]string, len(want))
	for i, tok := range want {
		expected[i] = Describe(tok)
	}
	return ParserFunc[T, L, L](func(inp *Stream[T, L], mode Mode) (L, *Located) {
		start := inp.Save()
		for i, w := range want {
			before := inp.Save()
			tok, ok := inp.Next()
			if !ok || tok != w {
				var zero L
				return zero, expect(inp, before, tok, ok, expected[i])
			}
		}
		return Bind(mode, func() L { return inp.SliceSince(start) }), nil
	})
}

// OneOf matches any single token in "set".
func OneOf[T comparable, L any](set ...T) Parser[T, L, T] {
	expected := make([]string, len(set))
	for i, tok := range set {
		expected[i] = Describe(tok)
	}
	return ParserFunc[T, L, T](func(inp *Stream[T, L], mode Mode) (T, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if ok {
			for _, s := range set {
				if tok == s {
					return tok, nil
				}
			}
		}
		var zero T
		return zero, expect(inp, before, tok, ok, expected...)
	})
}

// NoneOf matches any single token not in "set".
func NoneOf[T comparable, L any](set ...T) Parser[T, L, T] {
	return ParserFunc[T, L, T](func(inp *Stream[T, L], mode Mode) (T, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if !ok {
			var zero T
			return zero, expect(inp, before, tok, ok)
		}
		for _, s := range set {
			if tok == s {
				var zero T
				return zero, expect(inp, before, tok, ok)
			}
		}
		return tok, nil
	})
}

// Select matches a single token for which "f" returns true, producing f's
// output. "f" is called in both modes.
func Select[T, L, O any](f func(tok T) (O, bool), expected ...string) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if ok {
			if out, match := f(tok); match {
				return out, nil
			}
		}
		var zero O
		return zero, expect(inp, before, tok, ok, expected...)
	})
}

// End matches the end of input.
func End[T, L any]() Parser[T, L, Unit] {
	return ParserFunc[T, L, Unit](func(inp *Stream[T, L], mode Mode) (Unit, *Located) {
		before := inp.Save()
		tok, ok := inp.Next()
		if ok {
			err := At(before.offset, Unexpected(inp.SpanSince(before), any(tok), "end of input"))
			inp.Rewind(before)
			return Unit{}, err
		}
		return Unit{}, nil
	})
}

// Empty matches without consuming anything.
func Empty[T, L any]() Parser[T, L, Unit] {
	return ParserFunc[T, L, Unit](func(*Stream[T, L], Mode) (Unit, *Located) {
		return Unit{}, nil
	})
}
