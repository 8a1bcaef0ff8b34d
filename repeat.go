package combi

import "fmt"

// Repetition is the parser returned by Repeated.
type Repetition[T, L, O, C any] struct {
	p         Parser[T, L, O]
	container Container[O, C]
	atLeast   int
	atMost    int
}

// Repeated matches "p" zero or more times, accumulating outputs into
// "container".
//
// eg.
//
//	Repeated(digit, SliceOf[rune]()).AtLeast(1).AtMost(3)
func Repeated[T, L, O, C any](p Parser[T, L, O], container Container[O, C]) Repetition[T, L, O, C] {
	return Repetition[T, L, O, C]{p: p, container: container, atMost: -1}
}

// AtLeast requires at least "n" repetitions.
func (r Repetition[T, L, O, C]) AtLeast(n int) Repetition[T, L, O, C] {
	checkBound("AtLeast", n)
	checkRange(n, r.atMost)
	r.atLeast = n
	return r
}

// AtMost stops after "n" repetitions.
func (r Repetition[T, L, O, C]) AtMost(n int) Repetition[T, L, O, C] {
	checkBound("AtMost", n)
	checkRange(r.atLeast, n)
	r.atMost = n
	return r
}

// Exactly requires exactly "n" repetitions.
func (r Repetition[T, L, O, C]) Exactly(n int) Repetition[T, L, O, C] {
	checkBound("Exactly", n)
	r.atLeast, r.atMost = n, n
	return r
}

// Parse implements Parser.
//
// A repetition of "p" that succeeds without consuming input ends the loop
// once the lower bound is satisfied.
func (r Repetition[T, L, O, C]) Parse(inp *Stream[T, L], mode Mode) (C, *Located) {
	acc := Bind(mode, r.container.Default)
	count := 0
	for r.atMost < 0 || count < r.atMost {
		before := inp.Save()
		out, err := r.p.Parse(inp, mode)
		if err != nil {
			inp.Rewind(before)
			if count >= r.atLeast {
				return acc, nil
			}
			var zero C
			return zero, err
		}
		if mode == Emit {
			r.container.Push(&acc, out)
		}
		count++
		if inp.Offset() == before.offset && count >= r.atLeast {
			break
		}
	}
	return acc, nil
}

// Separated is the parser returned by SeparatedBy.
type Separated[T, L, O, S, C any] struct {
	p             Parser[T, L, O]
	sep           Parser[T, L, S]
	container     Container[O, C]
	atLeast       int
	atMost        int
	allowLeading  bool
	allowTrailing bool
}

// SeparatedBy matches zero or more "p" separated by "sep", accumulating
// outputs of "p" into "container". Separators are matched in Check mode.
func SeparatedBy[T, L, O, S, C any](p Parser[T, L, O], sep Parser[T, L, S], container Container[O, C]) Separated[T, L, O, S, C] {
	return Separated[T, L, O, S, C]{p: p, sep: sep, container: container, atMost: -1}
}

// AtLeast requires at least "n" items.
func (s Separated[T, L, O, S, C]) AtLeast(n int) Separated[T, L, O, S, C] {
	checkBound("AtLeast", n)
	checkRange(n, s.atMost)
	s.atLeast = n
	return s
}

// AtMost stops after "n" items.
//
// The separator preceding the final item is consumed, but no separator is
// consumed after it unless AllowTrailing is set.
func (s Separated[T, L, O, S, C]) AtMost(n int) Separated[T, L, O, S, C] {
	checkBound("AtMost", n)
	checkRange(s.atLeast, n)
	s.atMost = n
	return s
}

// Exactly requires exactly "n" items.
func (s Separated[T, L, O, S, C]) Exactly(n int) Separated[T, L, O, S, C] {
	checkBound("Exactly", n)
	s.atLeast, s.atMost = n, n
	return s
}

// AllowLeading accepts an optional separator before the first item.
func (s Separated[T, L, O, S, C]) AllowLeading() Separated[T, L, O, S, C] {
	s.allowLeading = true
	return s
}

// AllowTrailing accepts an optional separator after the last item.
func (s Separated[T, L, O, S, C]) AllowTrailing() Separated[T, L, O, S, C] {
	s.allowTrailing = true
	return s
}

// Parse implements Parser.
func (s Separated[T, L, O, S, C]) Parse(inp *Stream[T, L], mode Mode) (C, *Located) {
	var zero C
	acc := Bind(mode, s.container.Default)
	if s.atMost == 0 {
		return acc, nil
	}
	if s.allowLeading {
		optional(inp, s.sep)
	}

	before := inp.Save()
	out, err := s.p.Parse(inp, mode)
	if err != nil {
		inp.Rewind(before)
		if s.atLeast == 0 {
			return acc, nil
		}
		return zero, err
	}
	if mode == Emit {
		s.container.Push(&acc, out)
	}
	count := 1

	for s.atMost < 0 || count < s.atMost {
		beforeSep := inp.Save()
		if _, err := s.sep.Parse(inp, Check); err != nil {
			inp.Rewind(beforeSep)
			if count < s.atLeast {
				return zero, err
			}
			break
		}
		out, err := s.p.Parse(inp, mode)
		if err != nil {
			// Un-consume the separator.
			inp.Rewind(beforeSep)
			if count < s.atLeast {
				return zero, err
			}
			break
		}
		if mode == Emit {
			s.container.Push(&acc, out)
		}
		count++
	}

	if s.allowTrailing {
		optional(inp, s.sep)
	}
	return acc, nil
}

// optional matches "p" in Check mode, rewinding if it fails.
func optional[T, L, O any](inp *Stream[T, L], p Parser[T, L, O]) {
	before := inp.Save()
	if _, err := p.Parse(inp, Check); err != nil {
		inp.Rewind(before)
	}
}

// checkRange panics if "atLeast" exceeds an upper bound "atMost" (-1 is unbounded).
func checkRange(atLeast, atMost int) {
	if atMost >= 0 && atLeast > atMost {
		panic(fmt.Sprintf("combi: AtLeast(%d) exceeds AtMost(%d)", atLeast, atMost))
	}
}

func checkBound(name string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("combi: %s(%d) must not be negative", name, n))
	}
}
