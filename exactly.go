package combi

// RepeatedExactly matches "p" exactly exact.Len() times, writing each output
// straight into the container's storage.
//
// If fewer items match, the items already written are released with
// DropBefore before the failure is returned.
func RepeatedExactly[T, L, O, C any](p Parser[T, L, O], exact ContainerExactly[O, C]) Parser[T, L, C] {
	n := exact.Len()
	return ParserFunc[T, L, C](func(inp *Stream[T, L], mode Mode) (C, *Located) {
		var zero C
		slots := Bind(mode, exact.Uninit)
		for i := 0; i < n; i++ {
			before := inp.Save()
			out, err := p.Parse(inp, mode)
			if err != nil {
				inp.Rewind(before)
				if mode == Emit {
					slots.DropBefore(i)
				}
				return zero, err
			}
			if mode == Emit {
				slots.Write(i, out)
			}
		}
		if mode == Emit {
			return slots.Take(), nil
		}
		return zero, nil
	})
}

// SeparatedExactly is the parser returned by SeparatedByExactly.
type SeparatedExactly[T, L, O, S, C any] struct {
	p             Parser[T, L, O]
	sep           Parser[T, L, S]
	exact         ContainerExactly[O, C]
	allowLeading  bool
	allowTrailing bool
}

// SeparatedByExactly matches exactly exact.Len() items separated by "sep".
//
// A missing separator or item releases the items already written and fails.
func SeparatedByExactly[T, L, O, S, C any](p Parser[T, L, O], sep Parser[T, L, S], exact ContainerExactly[O, C]) SeparatedExactly[T, L, O, S, C] {
	return SeparatedExactly[T, L, O, S, C]{p: p, sep: sep, exact: exact}
}

// AllowLeading accepts an optional separator before the first item.
func (s SeparatedExactly[T, L, O, S, C]) AllowLeading() SeparatedExactly[T, L, O, S, C] {
	s.allowLeading = true
	return s
}

// AllowTrailing accepts an optional separator after the last item.
func (s SeparatedExactly[T, L, O, S, C]) AllowTrailing() SeparatedExactly[T, L, O, S, C] {
	s.allowTrailing = true
	return s
}

// Parse implements Parser.
func (s SeparatedExactly[T, L, O, S, C]) Parse(inp *Stream[T, L], mode Mode) (C, *Located) {
	var zero C
	n := s.exact.Len()
	if s.allowLeading {
		optional(inp, s.sep)
	}
	slots := Bind(mode, s.exact.Uninit)
	for i := 0; i < n; i++ {
		if i > 0 {
			beforeSep := inp.Save()
			if _, err := s.sep.Parse(inp, Check); err != nil {
				inp.Rewind(beforeSep)
				if mode == Emit {
					slots.DropBefore(i)
				}
				return zero, err
			}
		}
		before := inp.Save()
		out, err := s.p.Parse(inp, mode)
		if err != nil {
			inp.Rewind(before)
			if mode == Emit {
				slots.DropBefore(i)
			}
			return zero, err
		}
		if mode == Emit {
			slots.Write(i, out)
		}
	}
	if s.allowTrailing {
		optional(inp, s.sep)
	}
	if mode == Emit {
		return slots.Take(), nil
	}
	return zero, nil
}
