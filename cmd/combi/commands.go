package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/alecthomas/combi"
	"github.com/alecthomas/combi/ebnf"
	"github.com/alecthomas/combi/lexer"
)

type grammarFlags struct {
	Grammar   string `short:"g" required:"" type:"existingfile" help:"EBNF grammar file."`
	Start     string `short:"s" help:"Production to start from (defaults to the first production in the grammar)."`
	Trace     bool   `help:"Trace productions to stderr while parsing."`
	MaxErrors int    `help:"Maximum number of errors to report (0 reports all)." default:"10"`
	Input     string `arg:"" optional:"" default:"-" help:"File to read (stdin if omitted)."`
}

// run the grammar over the input.
func (g *grammarFlags) run(e *env, mode combi.Mode) (*ebnf.Node, error) {
	data, err := os.ReadFile(g.Grammar)
	if err != nil {
		return nil, err
	}
	grammar, err := ebnf.Compile(g.Grammar, string(data))
	if err != nil {
		return nil, err
	}
	start := g.Start
	if start == "" {
		start = grammar.Start()
	}
	e.log.WithFields(logrus.Fields{
		"grammar":     g.Grammar,
		"start":       start,
		"productions": len(grammar.Productions()),
	}).Debug("Compiled grammar")
	p, err := grammar.Parser(start)
	if err != nil {
		return nil, err
	}
	filename, src, err := readInput(e, g.Input)
	if err != nil {
		return nil, err
	}
	options := []combi.Option{combi.MaxErrors(g.MaxErrors)}
	if g.Trace {
		options = append(options, combi.Trace(e.stderr))
	}
	result := combi.Run(p, combi.String(src), mode, options...)
	e.log.WithFields(logrus.Fields{"mode": mode, "ok": result.OK, "errors": len(result.Errors)}).Debug("Parsed")
	if len(result.Errors) == 0 {
		return result.Output, nil
	}
	errs := result.Errors
	if g.MaxErrors > 0 && len(errs) > g.MaxErrors {
		errs = errs[:g.MaxErrors]
	}
	for _, err := range errs {
		fmt.Fprintf(e.stderr, "%s: %s\n", locate(filename, src, err.Pos), message(err.Err))
	}
	return nil, fmt.Errorf("%s: %d error(s)", filename, len(result.Errors))
}

type parseCmd struct {
	grammarFlags
	Format string `enum:"tree,repr" default:"tree" help:"Output format (${enum})."`
}

func (c *parseCmd) Run(e *env) error {
	node, err := c.run(e, combi.Emit)
	if err != nil {
		return err
	}
	switch c.Format {
	case "repr":
		fmt.Fprintln(e.stdout, repr.String(node, repr.Indent("  "), repr.OmitEmpty(true)))
	default:
		fmt.Fprint(e.stdout, node)
	}
	return nil
}

type checkCmd struct {
	grammarFlags
}

func (c *checkCmd) Run(e *env) error {
	_, err := c.run(e, combi.Check)
	if err != nil {
		return err
	}
	e.log.WithField("input", c.Input).Info("Input is valid")
	return nil
}

type fmtCmd struct {
	Grammar string `arg:"" type:"existingfile" help:"EBNF grammar file."`
}

func (c *fmtCmd) Run(e *env) error {
	data, err := os.ReadFile(c.Grammar)
	if err != nil {
		return err
	}
	grammar, err := ebnf.Compile(c.Grammar, string(data))
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, grammar)
	return nil
}

type lexCmd struct {
	Rules string `short:"r" required:"" type:"existingfile" help:"YAML file containing an ordered list of rules, each with a name and pattern."`
	Input string `arg:"" optional:"" default:"-" help:"File to read (stdin if omitted)."`
}

func (c *lexCmd) Run(e *env) error {
	data, err := os.ReadFile(c.Rules)
	if err != nil {
		return err
	}
	var rules []lexer.Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("%s: %w", c.Rules, err)
	}
	def, err := lexer.New(rules...)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Rules, err)
	}
	filename, src, err := readInput(e, c.Input)
	if err != nil {
		return err
	}
	tokens, err := def.Lex(filename, src)
	if err != nil {
		return err
	}
	symbols := lexer.SymbolsByRune(def)
	for _, token := range tokens {
		fmt.Fprintf(e.stdout, "%s %s %q\n", token.Pos, symbols[token.Type], token.Value)
	}
	return nil
}

func readInput(e *env, path string) (filename, src string, err error) {
	if path == "-" {
		data, err := io.ReadAll(e.stdin)
		return "<stdin>", string(data), err
	}
	data, err := os.ReadFile(path)
	return path, string(data), err
}

// locate converts an offset into "src" to a line and column.
func locate(filename, src string, offset int) lexer.Position {
	if offset > len(src) {
		offset = len(src)
	}
	pos := lexer.Position{Filename: filename, Offset: offset, Line: 1, Column: 1}
	for _, rn := range src[:offset] {
		if rn == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// message returns the error without its span.
func message(err combi.Error) string {
	switch err := err.(type) {
	case *combi.UnexpectedError:
		return err.Message()
	case *combi.CustomError:
		return err.Err.Error()
	default:
		return err.Error()
	}
}
