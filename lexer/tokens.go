package lexer

import (
	"strconv"

	"github.com/alecthomas/combi"
)

type tokens struct {
	tokens []Token
	elide  map[rune]bool
}

// Tokens returns an Input over lexed tokens. Offsets are indices into "toks".
//
// Input ends at the first EOF token. Tokens of the types in "elide" are
// skipped by the parser, but still included in slices of the input.
func Tokens(toks []Token, elide ...rune) combi.Input[Token, []Token] {
	t := tokens{tokens: toks, elide: make(map[rune]bool, len(elide))}
	for _, rn := range elide {
		t.elide[rn] = true
	}
	return t
}

func (t tokens) Next(offset int) (Token, int, bool) {
	for i := offset; i < len(t.tokens); i++ {
		tok := t.tokens[i]
		if tok.EOF() {
			return Token{}, i, false
		}
		if t.elide[tok.Type] {
			continue
		}
		return tok, i + 1, true
	}
	return Token{}, len(t.tokens), false
}

func (t tokens) Slice(start, end int) []Token { return t.tokens[start:end:end] }

// PositionOf returns the source position of the token at "offset", for
// reporting errors over a Tokens input.
func PositionOf(toks []Token, offset int) Position {
	switch {
	case len(toks) == 0:
		return Position{}
	case offset < len(toks):
		return toks[offset].Pos
	default:
		return toks[len(toks)-1].Pos
	}
}

// Type matches a single token of any of the given symbolic types.
//
// It panics if "def" does not support one of the types.
func Type(def Definition, types ...string) combi.Parser[Token, []Token, Token] {
	table, err := MakeSymbolTable(def, types...)
	if err != nil {
		panic(err)
	}
	return combi.Select[Token, []Token](func(tok Token) (Token, bool) {
		return tok, table[tok.Type]
	}, types...)
}

// Literal matches a single token with any of the given values.
func Literal(values ...string) combi.Parser[Token, []Token, Token] {
	expected := make([]string, len(values))
	for i, value := range values {
		expected[i] = strconv.Quote(value)
	}
	return combi.Select[Token, []Token](func(tok Token) (Token, bool) {
		for _, value := range values {
			if tok.Value == value {
				return tok, true
			}
		}
		return tok, false
	}, expected...)
}

// Value maps a token parser to the token's value.
func Value(p combi.Parser[Token, []Token, Token]) combi.Parser[Token, []Token, string] {
	return combi.Map(p, func(tok Token) string { return tok.Value })
}
