package ebnf

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// String returns the grammar in canonical EBNF, one production per line.
//
// Productions reachable from the start production come first, in the order they are referenced.
// Any others follow in alphabetical order.
func (g *Grammar) String() string {
	seen := map[string]bool{}
	order := []string{}
	var visit func(name string)
	visit = func(name string) {
		production, ok := g.grammar[name]
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		order = append(order, name)
		for _, ref := range references(production.Expr, nil) {
			visit(ref)
		}
	}
	visit(g.start)
	for _, name := range g.Productions() {
		visit(name)
	}
	out := make([]string, 0, len(order))
	for _, name := range order {
		body := &strings.Builder{}
		format(body, g.grammar[name].Expr)
		if body.Len() == 0 {
			out = append(out, fmt.Sprintf("%s = .", name))
		} else {
			out = append(out, fmt.Sprintf("%s = %s .", name, body))
		}
	}
	return strings.Join(out, "\n")
}

// references returns the production names referenced by "expr", in order of appearance.
func references(expr ebnf.Expression, out []string) []string {
	switch n := expr.(type) {
	case ebnf.Alternative:
		for _, child := range n {
			out = references(child, out)
		}
	case ebnf.Sequence:
		for _, child := range n {
			out = references(child, out)
		}
	case *ebnf.Name:
		out = append(out, n.String)
	case *ebnf.Group:
		out = references(n.Body, out)
	case *ebnf.Option:
		out = references(n.Body, out)
	case *ebnf.Repetition:
		out = references(n.Body, out)
	}
	return out
}

func format(w *strings.Builder, expr ebnf.Expression) {
	switch n := expr.(type) {
	case nil:

	case ebnf.Alternative:
		for i, child := range n {
			if i > 0 {
				w.WriteString(" | ")
			}
			format(w, child)
		}

	case ebnf.Sequence:
		for i, child := range n {
			if i > 0 {
				w.WriteString(" ")
			}
			format(w, child)
		}

	case *ebnf.Name:
		w.WriteString(n.String)

	case *ebnf.Token:
		w.WriteString(strconv.Quote(n.String))

	case *ebnf.Range:
		fmt.Fprintf(w, "%s … %s", strconv.Quote(n.Begin.String), strconv.Quote(n.End.String))

	case *ebnf.Group:
		w.WriteString("( ")
		format(w, n.Body)
		w.WriteString(" )")

	case *ebnf.Option:
		w.WriteString("[ ")
		format(w, n.Body)
		w.WriteString(" ]")

	case *ebnf.Repetition:
		w.WriteString("{ ")
		format(w, n.Body)
		w.WriteString(" }")

	default:
		panic(fmt.Sprintf("unsupported EBNF expression type %T", expr))
	}
}

