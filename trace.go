package combi

import (
	"fmt"
	"strings"
)

// Labelled names "p" for error messages and tracing.
//
// If "p" fails without making progress, an UnexpectedError's expectations
// are replaced by "label". When tracing is enabled with Trace, entry and
// failure of the parser are written to the trace.
func Labelled[T, L, O any](label string, p Parser[T, L, O]) Parser[T, L, O] {
	return ParserFunc[T, L, O](func(inp *Stream[T, L], mode Mode) (O, *Located) {
		start := inp.Offset()
		if inp.trace != nil {
			tok, ok := inp.Peek()
			next := "EOF"
			if ok {
				next = Describe(any(tok))
			}
			fmt.Fprintf(inp.trace, "%s%s %s %d\n", strings.Repeat(" ", inp.depth*2), label, next, start)
		}
		inp.depth++
		out, err := p.Parse(inp, mode)
		inp.depth--
		if err == nil {
			return out, nil
		}
		if inp.trace != nil {
			fmt.Fprintf(inp.trace, "%s!%s %s\n", strings.Repeat(" ", inp.depth*2), label, err.Err)
		}
		if uerr, ok := err.Err.(*UnexpectedError); ok && err.Pos == start {
			relabelled := *uerr
			relabelled.Expected = []string{label}
			return out, At(err.Pos, &relabelled)
		}
		return out, err
	})
}
