package combi

// Map the output of "p" with "f".
//
// "f" is only called in Emit mode.
func Map[T, L, A, B any](p Parser[T, L, A], f func(A) B) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		out, err := p.Parse(inp, mode)
		if err != nil {
			var zero B
			return zero, err
		}
		return Apply(mode, out, f), nil
	})
}

// MapWithSpan maps the output of "p" with "f", which also receives the span
// of input "p" consumed.
func MapWithSpan[T, L, A, B any](p Parser[T, L, A], f func(A, Span) B) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			var zero B
			return zero, err
		}
		return Bind(mode, func() B { return f(out, inp.SpanSince(before)) }), nil
	})
}

// MapWithState maps the output of "p" with "f", which also receives the
// consumed span and the parse state.
//
// "p" always runs in Emit mode, but "f" is only called in Emit mode, so
// state mutations made by "f" do not happen during validation.
func MapWithState[S, T, L, A, B any](p Parser[T, L, A], f func(A, Span, *S) B) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, Emit)
		if err != nil {
			var zero B
			return zero, err
		}
		return Bind(mode, func() B { return f(out, inp.SpanSince(before), StateOf[S](inp)) }), nil
	})
}

// TryMap maps the output of "p" with the fallible function "f".
//
// "p" always runs in Emit mode as "f" needs its real output. An error
// returned by "f" is located after the input "p" consumed, not before it.
func TryMap[T, L, A, B any](p Parser[T, L, A], f func(A, Span) (B, error)) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, Emit)
		if err != nil {
			var zero B
			return zero, err
		}
		span := inp.SpanSince(before)
		mapped, ferr := f(out, span)
		if ferr != nil {
			var zero B
			return zero, At(inp.Offset(), Custom(span, ferr))
		}
		return Bind(mode, func() B { return mapped }), nil
	})
}

// TryMapWithState is TryMap with access to the parse state.
func TryMapWithState[S, T, L, A, B any](p Parser[T, L, A], f func(A, Span, *S) (B, error)) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, Emit)
		if err != nil {
			var zero B
			return zero, err
		}
		span := inp.SpanSince(before)
		mapped, ferr := f(out, span, StateOf[S](inp))
		if ferr != nil {
			var zero B
			return zero, At(inp.Offset(), Custom(span, ferr))
		}
		return Bind(mode, func() B { return mapped }), nil
	})
}

// MapSlice runs "p" in Check mode and maps the slice of input it consumed
// with "f". The structured output of "p" is never constructed.
func MapSlice[T, L, A, B any](p Parser[T, L, A], f func(L) B) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		if _, err := p.Parse(inp, Check); err != nil {
			var zero B
			return zero, err
		}
		after := inp.Save()
		return Bind(mode, func() B { return f(inp.Slice(before, after)) }), nil
	})
}

// ToSlice produces the slice of input consumed by "p".
func ToSlice[T, L, A any](p Parser[T, L, A]) Parser[T, L, L] {
	return MapSlice(p, func(l L) L { return l })
}

// To replaces the output of "p" with "value".
//
// "p" runs in Check mode.
func To[T, L, A, B any](p Parser[T, L, A], value B) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		if _, err := p.Parse(inp, Check); err != nil {
			var zero B
			return zero, err
		}
		return Bind(mode, func() B { return value }), nil
	})
}

// Ignored discards the output of "p".
func Ignored[T, L, A any](p Parser[T, L, A]) Parser[T, L, Unit] {
	return To(p, Unit{})
}

// Filter fails if "keep" returns false for the output of "p".
//
// The rejection is located before "p" and carries no expected or found
// detail.
func Filter[T, L, O any](p Parser[T, L, O], keep func(O) bool) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, Emit)
		if err != nil {
			var zero O
			return zero, err
		}
		if !keep(out) {
			var zero O
			return zero, At(before.offset, &UnexpectedError{At: inp.SpanSince(before)})
		}
		return Bind(mode, func() O { return out }), nil
	})
}

// Verify validates the output of "p" with "f", which may report any number
// of non-fatal errors through "emit" while still succeeding.
//
// "p" always runs in Emit mode. Reported errors are located after the input
// "p" consumed.
func Verify[T, L, O any](p Parser[T, L, O], f func(out O, span Span, emit func(Error)) O) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, Emit)
		if err != nil {
			var zero O
			return zero, err
		}
		out = f(out, inp.SpanSince(before), func(e Error) { inp.Emit(At(inp.Offset(), e)) })
		return Bind(mode, func() O { return out }), nil
	})
}
