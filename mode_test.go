package combi_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

var (
	ws = combi.Repeated(combi.OneOf[rune, string](' ', '\t', '\n'), combi.Discard[rune]())

	number = combi.TryMap(combi.ToSlice(combi.Repeated(digit, combi.Discard[rune]()).AtLeast(1)), func(s string, _ combi.Span) (int, error) {
		return strconv.Atoi(s)
	})

	// Nested lists of numbers, eg. [1, [2, 3], []]
	list = combi.Recursive(func(self combi.Parser[rune, string, any]) combi.Parser[rune, string, any] {
		item := combi.PaddedBy(combi.Or(combi.Map(number, func(n int) any { return n }), self), ws)
		items := combi.SeparatedBy(item, just(','), combi.SliceOf[any]()).AllowTrailing()
		return combi.Map(combi.DelimitedBy[rune, string, []any](items, just('['), just(']')), func(items []any) any { return items })
	})
)

func TestNestedList(t *testing.T) {
	requireParse(t, list, "[1, [2,3], [],]", any([]any{1, []any{2, 3}, []any(nil)}))
	requireFail(t, list, "[1 2]", `3..4: unexpected '2' (expected ']')`)
	requireFail(t, list, "[", `1..1: unexpected end of input (expected ']')`)
}

func TestModeEquivalence(t *testing.T) {
	inputs := []string{
		"", "[", "[]", "[1]", "[1,2,]", "[[[[]]]]", "[1 2]", "[1,[2,[3,]],4]",
		"[99999999999999999999999]", "[,]", "[1]]", " [1]",
	}
	for _, input := range inputs {
		check := combi.Run(list, combi.String(input), combi.Check)
		emit := combi.Run(list, combi.String(input), combi.Emit)
		require.Equal(t, emit.OK, check.OK, input)
		require.Equal(t, emit.Errors, check.Errors, input)
		require.Nil(t, check.Output, input)
	}
}

func FuzzModeEquivalence(f *testing.F) {
	for _, seed := range []string{"[]", "[1,2]", "[[1],[2,[3]],]", "[1,,2]", "[", "[ 1 , 2 ]"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		check := combi.NewStream(combi.String(input))
		_, checkErr := list.Parse(check, combi.Check)
		emit := combi.NewStream(combi.String(input))
		_, emitErr := list.Parse(emit, combi.Emit)
		require.Equal(t, emitErr, checkErr)
		if emitErr == nil {
			require.Equal(t, emit.Offset(), check.Offset())
		}
	})
}

func TestModeHelpers(t *testing.T) {
	calls := 0
	f := func() int { calls++; return 1 }
	require.Equal(t, 0, combi.Bind(combi.Check, f))
	require.Equal(t, 1, combi.Bind(combi.Emit, f))
	require.Equal(t, 1, calls)
	require.Equal(t, "", combi.Apply(combi.Check, 1, strconv.Itoa))
	require.Equal(t, "1", combi.Apply(combi.Emit, 1, strconv.Itoa))
	add := func(a, b int) int { return a + b }
	require.Equal(t, 0, combi.Combine(combi.Check, 1, 2, add))
	require.Equal(t, 3, combi.Combine(combi.Emit, 1, 2, add))
	require.Equal(t, "check", combi.Check.String())
	require.Equal(t, "emit", combi.Emit.String())
}
