package combi

// Or matches "a" or, if it fails, "b".
//
// Or is left-biased: "b" is never attempted if "a" succeeds. If both fail
// their errors are merged by the Stream's MergeFunc.
func Or[T, L, O any](a, b Parser[T, L, O]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, erra := a.Parse(inp, mode)
		if erra == nil {
			return out, nil
		}
		inp.Rewind(before)
		out, errb := b.Parse(inp, mode)
		if errb == nil {
			return out, nil
		}
		return out, inp.Merge(erra, errb)
	})
}

// Choice matches the first of "alternatives" that succeeds.
//
// If all fail, their errors are merged from left to right.
func Choice[T, L, O any](alternatives ...Parser[T, L, O]) Parser[T, L, O] {
	if len(alternatives) == 0 {
		panic("combi: Choice requires at least one alternative")
	}
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		var merged *Located
		for _, alt := range alternatives {
			out, err := alt.Parse(inp, mode)
			if err == nil {
				return out, nil
			}
			inp.Rewind(before)
			if merged == nil {
				merged = err
			} else {
				merged = inp.Merge(merged, err)
			}
		}
		var zero O
		return zero, merged
	})
}

// OrNot optionally matches "p", producing nil if it did not match.
func OrNot[T, L, O any](p Parser[T, L, O]) Parser[T, L, *O] {
	return ParserFunc[T, L, *O](func(inp *Stream[T, L], mode Mode) (*O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			inp.Rewind(before)
			return nil, nil
		}
		return Bind(mode, func() *O { return &out }), nil
	})
}

// Rewind matches "p" but does not consume the input it matched.
//
// Errors "p" recovered from are kept.
func Rewind[T, L, O any](p Parser[T, L, O]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			return out, err
		}
		recovered := inp.errorsSince(before)
		inp.Rewind(before)
		inp.errs = append(inp.errs, recovered...)
		return out, nil
	})
}

// Not succeeds, consuming nothing, only if "p" does not match.
//
// If "p" matches, the error reports the next token as unexpected.
func Not[T, L, O any](p Parser[T, L, O]) Parser[T, L, Unit] {
	return ParserFunc[T, L, Unit](func(inp *Stream[T, L], mode Mode) (Unit, *Located) {
		before := inp.Save()
		_, err := p.Parse(inp, Check)
		inp.Rewind(before)
		if err != nil {
			return Unit{}, nil
		}
		tok, ok := inp.Next()
		lerr := expect(inp, before, tok, ok)
		inp.Rewind(before)
		return Unit{}, lerr
	})
}

// AndIs matches "p" only if "guard" also matches at the same position.
//
// "guard" runs in Check mode and its consumption is discarded.
func AndIs[T, L, O, G any](p Parser[T, L, O], guard Parser[T, L, G]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err != nil {
			inp.Rewind(before)
			return out, err
		}
		after := inp.Save()
		recovered := inp.errorsSince(before)
		inp.Rewind(before)
		if _, err := guard.Parse(inp, Check); err != nil {
			inp.Rewind(before)
			var zero O
			return zero, err
		}
		inp.Rewind(before)
		inp.errs = append(inp.errs, recovered...)
		inp.Rewind(after)
		return out, nil
	})
}

// OrElse replaces a failure of "p" with the output of "f".
//
// "f" is given the error and does not consult the input. If "f" also fails
// its error is reported at the original position.
func OrElse[T, L, O any](p Parser[T, L, O], f func(Error) (O, error)) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		out, err := p.Parse(inp, mode)
		if err == nil {
			return out, nil
		}
		out, ferr := f(err.Err)
		if ferr != nil {
			var zero O
			return zero, At(err.Pos, Custom(err.Err.Span(), ferr))
		}
		return Bind(mode, func() O { return out }), nil
	})
}

// RecoverWith attempts "fallback" from the start of "p" if "p" fails.
//
// If the fallback succeeds its output is used and the original error is
// recorded as non-fatal. If it fails, the original error is returned.
// Recovery is not attempted once the MaxErrors limit is reached.
func RecoverWith[T, L, O any](p, fallback Parser[T, L, O]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		before := inp.Save()
		out, err := p.Parse(inp, mode)
		if err == nil {
			return out, nil
		}
		inp.Rewind(before)
		if !inp.canRecover() {
			return out, err
		}
		out, ferr := fallback.Parse(inp, mode)
		if ferr != nil {
			inp.Rewind(before)
			var zero O
			return zero, err
		}
		inp.Emit(err)
		return out, nil
	})
}
