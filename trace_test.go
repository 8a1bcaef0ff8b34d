package combi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

func TestLabelled(t *testing.T) {
	number := combi.Labelled("number", combi.ToSlice(combi.Repeated(digit, combi.Discard[rune]()).AtLeast(1)))
	requireParse(t, number, "42", "42")
	requireFail(t, number, "x", `0..1: unexpected 'x' (expected number)`)

	// Failures after progress keep their own expectations.
	pair := combi.Labelled("pair", combi.Then(digit, digit))
	requireFail(t, pair, "1x", `1..2: unexpected 'x' (expected digit)`)
}

func TestTrace(t *testing.T) {
	num := combi.Labelled("num", digit)
	p := combi.Labelled("list", combi.DelimitedBy(combi.SeparatedBy(num, just(','), combi.SliceOf[rune]()), just('['), just(']')))
	w := &strings.Builder{}
	_, err := combi.Parse(p, combi.String("[1,x]"), combi.Trace(w))
	require.EqualError(t, err, `2..3: unexpected ',' (expected ']')`)
	require.Equal(t, `list '[' 0
  num '1' 1
  num 'x' 3
  !num 3..4: unexpected 'x' (expected digit)
!list 2..3: unexpected ',' (expected ']')
`, w.String())

	w.Reset()
	_, err = combi.Parse(num, combi.String(""), combi.Trace(w))
	require.Error(t, err)
	require.Equal(t, "num EOF 0\n!num 0..0: unexpected end of input (expected digit)\n", w.String())
}
