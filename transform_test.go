package combi_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

func TestMap(t *testing.T) {
	calls := 0
	p := combi.Map(digit, func(r rune) int { calls++; return int(r - '0') })
	requireParse(t, p, "7", 7)
	require.Equal(t, 1, calls, "mapper must only run in emit mode")

	spans := combi.MapWithSpan(combi.Seq[rune, string]('a', 'b'), func(s string, span combi.Span) combi.Span { return span })
	out, _, err := parseAll(t, combi.IgnoreThen(just('x'), spans), "xab")
	require.Nil(t, err)
	require.Equal(t, combi.Span{Start: 1, End: 3}, out)
	require.Equal(t, "1..3", out.String())
}

type counter struct {
	seen []string
}

func TestMapWithState(t *testing.T) {
	word := combi.ToSlice(combi.Repeated(letter, combi.Discard[rune]()).AtLeast(1))
	p := combi.SeparatedBy(combi.MapWithState(word, func(s string, span combi.Span, state *counter) int {
		state.seen = append(state.seen, s)
		return len(state.seen)
	}), just(' '), combi.SliceOf[int]())

	state := &counter{}
	out, err := combi.Parse(p, combi.String("foo bar"), combi.WithState(state))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, out)
	require.Equal(t, []string{"foo", "bar"}, state.seen)

	state = &counter{}
	err = combi.Validate(p, combi.String("foo bar"), combi.WithState(state))
	require.NoError(t, err)
	require.Empty(t, state.seen)

	require.PanicsWithValue(t, "combi: parser state is <nil>, not *combi_test.counter", func() {
		_, _ = combi.Parse(p, combi.String("foo"))
	})
}

func TestTryMap(t *testing.T) {
	small := combi.TryMap(combi.ToSlice(combi.Repeated(digit, combi.Discard[rune]()).AtLeast(1)), func(s string, span combi.Span) (uint8, error) {
		n, err := strconv.ParseUint(s, 10, 8)
		return uint8(n), err
	})
	requireParse(t, small, "255", uint8(255))
	_, _, err := parseAll(t, small, "256")
	require.NotNil(t, err)
	require.Equal(t, 3, err.Pos, "error is located after the mapped input")
	require.Equal(t, combi.Span{Start: 0, End: 3}, err.Err.Span())
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))

	type config struct{ max int }
	bounded := combi.TryMapWithState(digit, func(r rune, span combi.Span, cfg *config) (int, error) {
		if n := int(r - '0'); n <= cfg.max {
			return n, nil
		}
		return 0, errors.New("too big")
	})
	_, perr := combi.Parse(bounded, combi.String("5"), combi.WithState(&config{max: 3}))
	require.EqualError(t, perr, "0..1: too big")
}

func TestFilter(t *testing.T) {
	even := combi.Filter(digit, func(r rune) bool { return (r-'0')%2 == 0 })
	requireParse(t, even, "4", '4')
	_, _, err := parseAll(t, combi.IgnoreThen(just('x'), even), "x3")
	require.NotNil(t, err)
	require.Equal(t, 1, err.Pos, "error is located before the filtered input")
	require.EqualError(t, err, "1..2: unexpected input")
}

func TestVerify(t *testing.T) {
	p := combi.Verify(combi.Repeated(digit, combi.SliceOf[rune]()), func(out []rune, span combi.Span, emit func(combi.Error)) []rune {
		if len(out) > 2 {
			emit(combi.Errorf(span, "too many digits"))
			return out[:2]
		}
		return out
	})
	out, err := combi.Parse(p, combi.String("1234"))
	require.Equal(t, []rune("12"), out)
	var recovered *combi.RecoveryError
	require.True(t, errors.As(err, &recovered))
	require.EqualError(t, err, "0..4: too many digits")

	out, err = combi.Parse(p, combi.String("12"))
	require.NoError(t, err)
	require.Equal(t, []rune("12"), out)
}

func TestMapSliceTo(t *testing.T) {
	requireParse(t, combi.MapSlice(combi.Repeated(digit, combi.Discard[rune]()), func(s string) int { return len(s) }), "123", 3)
	requireParse(t, combi.To(just('t'), true), "t", true)
	requireParse(t, combi.Ignored(just('t')), "t", combi.Unit{})
}

func TestMapErr(t *testing.T) {
	relabel := func(err combi.Error) combi.Error {
		return combi.Errorf(err.Span(), "bad digit")
	}
	_, _, err := parseAll(t, combi.MapErr(digit, relabel), "x")
	require.EqualError(t, err, "0..1: bad digit")

	withSpan := combi.MapErrWithSpan(combi.Then(digit, digit), func(err combi.Error, span combi.Span) combi.Error {
		return combi.Errorf(span, "incomplete number")
	})
	_, _, err = parseAll(t, withSpan, "1x")
	require.EqualError(t, err, "0..2: incomplete number")
	require.Equal(t, 1, err.Pos)

	type names struct{ what string }
	withState := combi.MapErrWithState(digit, func(err combi.Error, span combi.Span, n *names) combi.Error {
		return combi.Errorf(span, "expected %s", n.what)
	})
	_, perr := combi.Parse(withState, combi.String("x"), combi.WithState(&names{what: "a digit"}))
	require.EqualError(t, perr, "0..1: expected a digit")
}
