package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

type call struct {
	Name string
	Args []string
}

func callParser(def Definition) combi.Parser[Token, []Token, call] {
	args := combi.SeparatedBy(Value(Type(def, "Ident", "Number")), Literal(","), combi.SliceOf[string]())
	return combi.Map(
		combi.Then(Value(Type(def, "Ident")), combi.DelimitedBy[Token, []Token, []string](args, Literal("("), Literal(")"))),
		func(p combi.Pair[string, []string]) call { return call{Name: p.First, Args: p.Second} },
	)
}

func TestParseTokens(t *testing.T) {
	def := MustSimple(testRules...)
	p := combi.ThenIgnore(callParser(def), combi.End[Token, []Token]())

	tokens, err := def.Lex("", "f(a, 12)")
	require.NoError(t, err)
	out, err := combi.Parse(p, Tokens(tokens))
	require.NoError(t, err)
	require.Equal(t, call{Name: "f", Args: []string{"a", "12"}}, out)

	tokens, err = def.Lex("", "f(a 12)")
	require.NoError(t, err)
	_, err = combi.Parse(p, Tokens(tokens))
	require.EqualError(t, err, `3..4: unexpected "12" (expected ")")`)
	var located *combi.Located
	require.ErrorAs(t, err, &located)
	require.Equal(t, "1:5", PositionOf(tokens, located.Pos).String())

	tokens, err = def.Lex("", "f(a")
	require.NoError(t, err)
	_, err = combi.Parse(p, Tokens(tokens))
	require.EqualError(t, err, `3..3: unexpected end of input (expected ")")`)
	require.Equal(t, "1:4", PositionOf(tokens, 3).String())
}

func TestElidedTokens(t *testing.T) {
	def := MustSimple(testRules...)
	tokens, err := def.Lex("", "f # the function\n(a) # done")
	require.NoError(t, err)

	// Without eliding, the comment is a token the grammar does not expect.
	_, err = combi.Parse(callParser(def), Tokens(tokens))
	require.EqualError(t, err, `1..2: unexpected "# the function" (expected "(")`)

	p := combi.MapSlice(callParser(def), func(toks []Token) int { return len(toks) })
	out, err := combi.Parse(p, Tokens(tokens, def.Symbols()["Comment"]))
	require.NoError(t, err)
	require.Equal(t, 5, out, "slices include elided tokens")
}

func TestType(t *testing.T) {
	def := MustSimple(testRules...)
	require.PanicsWithError(t, `lexer does not support symbol "String"`, func() { Type(def, "String") })

	tokens, err := def.Lex("", "42")
	require.NoError(t, err)
	_, err = combi.Parse(Type(def, "Ident", "Punct"), Tokens(tokens))
	require.EqualError(t, err, `0..1: unexpected "42" (expected Ident or Punct)`)
	require.Equal(t, Position{}, PositionOf(nil, 0))
}
