package combi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

type (
	runeParser   = combi.Parser[rune, string, rune]
	stringParser = combi.Parser[rune, string, string]
)

func just(r rune) runeParser { return combi.Just[rune, string](r) }

var digit = combi.Select[rune, string](func(r rune) (rune, bool) {
	return r, r >= '0' && r <= '9'
}, "digit")

// parseAll runs "p" over "input" in both modes, requiring identical outcomes,
// and returns the output and the unconsumed remainder of the input.
func parseAll[O any](t *testing.T, p combi.Parser[rune, string, O], input string) (O, string, *combi.Located) {
	t.Helper()
	check := combi.NewStream(combi.String(input))
	_, checkErr := p.Parse(check, combi.Check)
	emit := combi.NewStream(combi.String(input))
	out, emitErr := p.Parse(emit, combi.Emit)
	require.Equal(t, emitErr, checkErr, "mode mismatch for %q", input)
	require.Equal(t, len(emit.Errors()), len(check.Errors()), "mode mismatch for %q", input)
	if emitErr == nil {
		require.Equal(t, emit.Offset(), check.Offset(), "mode mismatch for %q", input)
	}
	return out, input[emit.Offset():], emitErr
}

func requireParse[O any](t *testing.T, p combi.Parser[rune, string, O], input string, expected O) {
	t.Helper()
	out, rest, err := parseAll(t, p, input)
	require.Nil(t, err, "%q", input)
	require.Empty(t, rest, "%q", input)
	require.Equal(t, expected, out, "%q", input)
}

func requireFail[O any](t *testing.T, p combi.Parser[rune, string, O], input string, msg string) {
	t.Helper()
	_, _, err := parseAll(t, p, input)
	require.NotNil(t, err, "%q", input)
	require.EqualError(t, err, msg, "%q", input)
}
