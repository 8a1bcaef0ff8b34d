package combi

// MapErr transforms the error of "p" when it fails.
func MapErr[T, L, O any](p Parser[T, L, O], f func(Error) Error) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		out, err := p.Parse(inp, mode)
		if err != nil {
			return out, At(err.Pos, f(err.Err))
		}
		return out, nil
	})
}

// MapErrWithSpan is MapErr with the span consumed up to the failure.
func MapErrWithSpan[T, L, O any](p Parser[T, L, O], f func(Error, Span) Error) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			return out, At(err.Pos, f(err.Err, inp.SpanSince(before)))
		}
		return out, nil
	})
}

// MapErrWithState is MapErrWithSpan with access to the parse state.
func MapErrWithState[S, T, L, O any](p Parser[T, L, O], f func(Error, Span, *S) Error) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			return out, At(err.Pos, f(err.Err, inp.SpanSince(before), StateOf[S](inp)))
		}
		return out, nil
	})
}
