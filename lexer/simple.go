package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Rule matching input.
//
// As a convenience, any Rule whose name starts with a lowercase letter will be elided from
// output.
type Rule struct {
	Name    string
	Pattern string
}

type compiledRule struct {
	Rule
	ignore bool
	re     *regexp.Regexp
}

// SimpleDefinition is a lexer defined by an ordered list of regular expression rules.
//
// Rules are matched in order, with the first successful match producing a token.
type SimpleDefinition struct {
	rules   []compiledRule
	symbols map[string]rune
}

var _ Definition = &SimpleDefinition{}

// MustSimple creates a new lexer definition from "rules", panicking if they are invalid.
func MustSimple(rules ...Rule) *SimpleDefinition {
	return Must(New(rules...))
}

// New creates a new lexer definition from "rules".
//
// eg.
//
//	def, err := lexer.New(
//		lexer.Rule{"Ident", `[a-zA-Z_]\w*`},
//		lexer.Rule{"Number", `\d+`},
//		lexer.Rule{"Punct", `[(),]`},
//		lexer.Rule{"whitespace", `\s+`},
//	)
func New(rules ...Rule) (*SimpleDefinition, error) {
	d := &SimpleDefinition{
		symbols: map[string]rune{"EOF": EOF},
	}
	rn := EOF - 1
	for i, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("rule %d: missing name", i)
		}
		if _, ok := d.symbols[rule.Name]; ok {
			return nil, fmt.Errorf("rule %d: duplicate rule %q", i, rule.Name)
		}
		re, err := regexp.Compile("^(?:" + rule.Pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %s", rule.Name, err)
		}
		d.rules = append(d.rules, compiledRule{
			Rule:   rule,
			ignore: unicode.IsLower(rune(rule.Name[0])),
			re:     re,
		})
		d.symbols[rule.Name] = rn
		rn--
	}
	return d, nil
}

// Rules returns the user-provided Rules used to construct the lexer.
func (d *SimpleDefinition) Rules() []Rule {
	out := make([]Rule, 0, len(d.rules))
	for _, rule := range d.rules {
		out = append(out, rule.Rule)
	}
	return out
}

func (d *SimpleDefinition) Symbols() map[string]rune { // nolint: golint
	return d.symbols
}

func (d *SimpleDefinition) Lex(filename string, src string) ([]Token, error) { // nolint: golint
	pos := Position{Filename: filename, Line: 1, Column: 1}
	tokens := []Token{}
	data := src
next:
	for len(data) > 0 {
		for _, rule := range d.rules {
			match := rule.re.FindStringIndex(data)
			if match == nil {
				continue
			}
			if match[1] == 0 {
				return nil, Errorf(pos, "rule %q did not match any input", rule.Name)
			}
			span := data[:match[1]]
			data = data[match[1]:]

			// Update position.
			start := pos
			pos.Offset += match[1]
			lines := strings.Count(span, "\n")
			pos.Line += lines
			// Update column.
			if lines == 0 {
				pos.Column += utf8.RuneCountInString(span)
			} else {
				pos.Column = utf8.RuneCountInString(span[strings.LastIndex(span, "\n"):])
			}
			if !rule.ignore {
				tokens = append(tokens, Token{
					Type:  d.symbols[rule.Name],
					Value: span,
					Pos:   start,
				})
			}
			continue next
		}
		sample := []rune(data)
		if len(sample) > 16 {
			sample = append(sample[:16], []rune("...")...)
		}
		return nil, Errorf(pos, "invalid input text %q", string(sample))
	}
	return append(tokens, EOFToken(pos)), nil
}
