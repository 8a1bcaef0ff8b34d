package combi

// Then matches "a" followed by "b", producing both outputs.
func Then[T, L, A, B any](a Parser[T, L, A], b Parser[T, L, B]) Parser[T, L, Pair[A, B]] {
	return ParserFunc[T, L, Pair[A, B]](func(inp *Stream[T, L], mode Mode) (Pair[A, B], *Located) {
		outa, err := a.Parse(inp, mode)
		if err != nil {
			return Pair[A, B]{}, err
		}
		outb, err := b.Parse(inp, mode)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Combine(mode, outa, outb, func(a A, b B) Pair[A, B] { return Pair[A, B]{a, b} }), nil
	})
}

// IgnoreThen matches "a" followed by "b", keeping only the output of "b".
func IgnoreThen[T, L, A, B any](a Parser[T, L, A], b Parser[T, L, B]) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		if _, err := a.Parse(inp, Check); err != nil {
			var zero B
			return zero, err
		}
		return b.Parse(inp, mode)
	})
}

// ThenIgnore matches "a" followed by "b", keeping only the output of "a".
func ThenIgnore[T, L, A, B any](a Parser[T, L, A], b Parser[T, L, B]) Parser[T, L, A] {
	return ParserFunc[T, L, A](func(inp *Stream[T, L], mode Mode) (A, *Located) {
		out, err := a.Parse(inp, mode)
		if err != nil {
			return out, err
		}
		if _, err := b.Parse(inp, Check); err != nil {
			var zero A
			return zero, err
		}
		return out, nil
	})
}

// ThenWith matches "a", then the parser "f" builds from its output.
//
// If either stage fails the cursor is rewound to where "a" started.
func ThenWith[T, L, A, B any](a Parser[T, L, A], f func(A) Parser[T, L, B]) Parser[T, L, B] {
	return ParserFunc[T, L, B](func(inp *Stream[T, L], mode Mode) (B, *Located) {
		before := inp.Save()
		out, err := a.Parse(inp, Emit)
		if err != nil {
			inp.Rewind(before)
			var zero B
			return zero, err
		}
		next, err := f(out).Parse(inp, mode)
		if err != nil {
			inp.Rewind(before)
			return next, err
		}
		return next, nil
	})
}

// DelimitedBy matches "p" between "open" and "closing", keeping only the output
// of "p".
func DelimitedBy[T, L, O, A, B any](p Parser[T, L, O], open Parser[T, L, A], closing Parser[T, L, B]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		var zero O
		if _, err := open.Parse(inp, Check); err != nil {
			return zero, err
		}
		out, err := p.Parse(inp, mode)
		if err != nil {
			return zero, err
		}
		if _, err := closing.Parse(inp, Check); err != nil {
			return zero, err
		}
		return out, nil
	})
}

// PaddedBy matches "p" with "padding" on either side.
func PaddedBy[T, L, O, A any](p Parser[T, L, O], padding Parser[T, L, A]) Parser[T, L, O] {
	return DelimitedBy(p, padding, padding)
}

// Chain matches "a" then "b", concatenating their outputs.
func Chain[T, L, O any](a, b Parser[T, L, []O]) Parser[T, L, []O] {
	return Map(Then(a, b), func(p Pair[[]O, []O]) []O {
		return append(append(make([]O, 0, len(p.First)+len(p.Second)), p.First...), p.Second...)
	})
}

// Append matches "a" then "b", appending the output of "b" to that of "a".
func Append[T, L, O any](a Parser[T, L, []O], b Parser[T, L, O]) Parser[T, L, []O] {
	return Map(Then(a, b), func(p Pair[[]O, O]) []O {
		return append(p.First, p.Second)
	})
}
