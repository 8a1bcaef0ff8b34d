// Package ebnf compiles grammars written in the EBNF dialect of golang.org/x/exp/ebnf into combi
// parsers that produce a tree of Nodes.
//
// Productions with lower-case names are lexical: they match characters exactly and produce a
// single leaf Node holding the matched text. Productions with upper-case names are syntactic:
// whitespace is skipped before every terminal and lexical production they reference, and they
// produce a Node whose children are the nodes matched within them.
//
// Here's an example grammar for a list of numbers:
//
//	List = "[" [ number { "," number } ] "]" .
//	number = digit { digit } .
//	digit = "0" … "9" .
package ebnf

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/alecthomas/combi"
	"github.com/alecthomas/combi/text"
)

// Node in a parse tree.
type Node struct {
	// Name of the production that produced the node, or "" for a literal token.
	Name string
	// Text matched by a lexical production or literal token.
	Text     string
	Span     combi.Span
	Children []*Node
}

// Leaf returns true if the node was produced by a lexical production or a literal token.
func (n *Node) Leaf() bool { return n.Name == "" || isLexical(n.Name) }

// String formats the tree rooted at the node, one node per line.
func (n *Node) String() string {
	w := &strings.Builder{}
	n.format(w, "")
	return w.String()
}

func (n *Node) format(w *strings.Builder, indent string) {
	switch {
	case n.Name == "":
		fmt.Fprintf(w, "%s%q %s\n", indent, n.Text, n.Span)
	case n.Leaf():
		fmt.Fprintf(w, "%s%s %q %s\n", indent, n.Name, n.Text, n.Span)
	default:
		fmt.Fprintf(w, "%s%s %s\n", indent, n.Name, n.Span)
		for _, child := range n.Children {
			child.format(w, indent+"  ")
		}
	}
}

// Grammar is a parsed EBNF grammar.
type Grammar struct {
	grammar ebnf.Grammar
	start   string
}

// Compile parses an EBNF grammar.
func Compile(filename, src string) (*Grammar, error) {
	grammar, err := ebnf.Parse(filename, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	g := &Grammar{grammar: grammar}
	first := -1
	for name, production := range grammar {
		if offset := production.Pos().Offset; first < 0 || offset < first {
			g.start, first = name, offset
		}
	}
	return g, nil
}

// Must panics if Compile failed.
func Must(g *Grammar, err error) *Grammar {
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the name of the first production in the grammar source.
func (g *Grammar) Start() string { return g.start }

// Productions returns the names of all productions in the grammar.
func (g *Grammar) Productions() []string {
	out := make([]string, 0, len(g.grammar))
	for name := range g.grammar {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Parser returns a parser matching the whole input against the production "start".
//
// The grammar is verified first: every production must be defined and reachable from "start",
// and lexical productions may only reference other lexical productions.
func (g *Grammar) Parser(start string) (combi.Parser[rune, string, *Node], error) {
	if err := ebnf.Verify(g.grammar, start); err != nil {
		return nil, err
	}
	c := &compiler{
		grammar:   g.grammar,
		ws:        combi.Ignored[rune, string, combi.Unit](text.Whitespace[rune, string]()),
		syntactic: map[string]*combi.Declared[rune, string, *Node]{},
		lexical:   map[string]*combi.Declared[rune, string, combi.Unit]{},
	}
	root := c.node(start)
	return combi.ThenIgnore(root, combi.IgnoreThen(c.ws, combi.End[rune, string]())), nil
}

type (
	nodesParser = combi.Parser[rune, string, []*Node]
	matchParser = combi.Parser[rune, string, combi.Unit]
)

type compiler struct {
	grammar   ebnf.Grammar
	ws        matchParser
	syntactic map[string]*combi.Declared[rune, string, *Node]
	lexical   map[string]*combi.Declared[rune, string, combi.Unit]
}

// node returns a parser for the production "name" producing a single Node.
func (c *compiler) node(name string) combi.Parser[rune, string, *Node] {
	if isLexical(name) {
		return c.leaf(name, combi.Labelled(name, c.lex(name)))
	}
	if d, ok := c.syntactic[name]; ok {
		return d
	}
	d := combi.Declare[rune, string, *Node]()
	c.syntactic[name] = d
	body := c.syntax(c.grammar[name].Expr)
	d.Define(combi.Labelled(name, combi.MapWithSpan(body, func(children []*Node, span combi.Span) *Node {
		if len(children) > 0 {
			span = combi.Span{Start: children[0].Span.Start, End: children[len(children)-1].Span.End}
		}
		return &Node{Name: name, Span: span, Children: children}
	})))
	return d
}

// leaf skips whitespace then matches "p", producing a Node holding the matched text.
func (c *compiler) leaf(name string, p matchParser) combi.Parser[rune, string, *Node] {
	return combi.IgnoreThen(c.ws, combi.MapWithSpan(combi.ToSlice(p), func(text string, span combi.Span) *Node {
		return &Node{Name: name, Text: text, Span: span}
	}))
}

func (c *compiler) lex(name string) matchParser {
	if d, ok := c.lexical[name]; ok {
		return d
	}
	d := combi.Declare[rune, string, combi.Unit]()
	c.lexical[name] = d
	d.Define(c.match(c.grammar[name].Expr))
	return d
}

// syntax compiles an expression of a syntactic production.
func (c *compiler) syntax(expr ebnf.Expression) nodesParser {
	switch n := expr.(type) {
	case nil:
		return combi.To(combi.Empty[rune, string](), []*Node(nil))

	case ebnf.Alternative:
		return alternatives(n, c.syntax, func(set []rune) nodesParser {
			return single(c.leaf("", combi.Ignored(combi.OneOf[rune, string](set...))))
		})

	case ebnf.Sequence:
		p := c.syntax(n[0])
		for _, expr := range n[1:] {
			p = combi.Chain(p, c.syntax(expr))
		}
		return p

	case *ebnf.Name:
		return single(c.node(n.String))

	case *ebnf.Token:
		return single(c.leaf("", token(n)))

	case *ebnf.Range:
		return single(c.leaf("", characterRange(n)))

	case *ebnf.Group:
		return c.syntax(n.Body)

	case *ebnf.Option:
		return combi.Map(combi.OrNot(c.syntax(n.Body)), func(nodes *[]*Node) []*Node {
			if nodes == nil {
				return nil
			}
			return *nodes
		})

	case *ebnf.Repetition:
		return combi.Repeated[rune, string, []*Node, []*Node](c.syntax(n.Body), flatten{})
	}
	panic(fmt.Sprintf("unsupported EBNF expression type %T", expr))
}

// match compiles an expression of a lexical production.
func (c *compiler) match(expr ebnf.Expression) matchParser {
	switch n := expr.(type) {
	case nil:
		return combi.Empty[rune, string]()

	case ebnf.Alternative:
		return alternatives(n, c.match, func(set []rune) matchParser {
			return combi.Ignored(combi.OneOf[rune, string](set...))
		})

	case ebnf.Sequence:
		p := c.match(n[0])
		for _, expr := range n[1:] {
			p = combi.Ignored(combi.Then(p, c.match(expr)))
		}
		return p

	case *ebnf.Name:
		return c.lex(n.String)

	case *ebnf.Token:
		return token(n)

	case *ebnf.Range:
		return characterRange(n)

	case *ebnf.Group:
		return c.match(n.Body)

	case *ebnf.Option:
		return combi.Ignored(combi.OrNot(c.match(n.Body)))

	case *ebnf.Repetition:
		return combi.Repeated(c.match(n.Body), combi.Discard[combi.Unit]())
	}
	panic(fmt.Sprintf("unsupported lexer expression type %T", expr))
}

// alternatives compiles an Alternative, converting runs of single character tokens into a
// character set (eg. "a" | "b" | "c" | "true" becomes set("abc") | "true").
func alternatives[O any](
	alt ebnf.Alternative,
	compile func(ebnf.Expression) combi.Parser[rune, string, O],
	set func([]rune) combi.Parser[rune, string, O],
) combi.Parser[rune, string, O] {
	out := make([]combi.Parser[rune, string, O], 0, len(alt))
	var runes []rune
	flush := func() {
		if len(runes) > 0 {
			out = append(out, set(runes))
			runes = nil
		}
	}
	for _, expr := range alt {
		if t, ok := expr.(*ebnf.Token); ok && utf8.RuneCountInString(t.String) == 1 {
			rn, _ := utf8.DecodeRuneInString(t.String)
			runes = append(runes, rn)
			continue
		}
		flush()
		out = append(out, compile(expr))
	}
	flush()
	if len(out) == 1 {
		return out[0]
	}
	return combi.Choice(out...)
}

func token(t *ebnf.Token) matchParser {
	return combi.Ignored(combi.Seq[rune, string]([]rune(t.String)...))
}

func characterRange(r *ebnf.Range) matchParser {
	start, _ := utf8.DecodeRuneInString(r.Begin.String)
	end, _ := utf8.DecodeRuneInString(r.End.String)
	expected := fmt.Sprintf("%q…%q", start, end)
	return combi.Ignored(combi.Select[rune, string](func(rn rune) (rune, bool) {
		return rn, rn >= start && rn <= end
	}, expected))
}

func single(p combi.Parser[rune, string, *Node]) nodesParser {
	return combi.Map(p, func(n *Node) []*Node { return []*Node{n} })
}

// flatten concatenates the nodes of each repetition.
type flatten struct{}

func (flatten) Default() []*Node                 { return nil }
func (flatten) Push(nodes *[]*Node, item []*Node) { *nodes = append(*nodes, item...) }

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
