package combi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

func TestPrioritize(t *testing.T) {
	near := combi.At(1, combi.Unexpected(combi.Span{Start: 1, End: 2}, 'x', "a"))
	far := combi.At(3, combi.Unexpected(combi.Span{Start: 3, End: 4}, 'y', "b"))
	require.Equal(t, far, combi.Prioritize(near, far))
	require.Equal(t, far, combi.Prioritize(far, near))

	other := combi.At(1, combi.Unexpected(combi.Span{Start: 1, End: 3}, 'z', "c", "a"))
	merged := combi.Prioritize(near, other)
	require.Equal(t, 1, merged.Pos)
	require.Equal(t, &combi.UnexpectedError{
		Expected: []string{"a", "c"},
		Found:    'x',
		At:       combi.Span{Start: 1, End: 3},
	}, merged.Err)

	custom := combi.At(1, combi.Errorf(combi.Span{Start: 1, End: 2}, "custom"))
	require.Equal(t, custom, combi.Prioritize(custom, near))
}

func TestUnexpectedErrorMessages(t *testing.T) {
	span := combi.Span{Start: 2, End: 3}
	tests := []struct {
		err      *combi.UnexpectedError
		expected string
	}{
		{combi.Unexpected(span, 'x'), `2..3: unexpected 'x'`},
		{combi.Unexpected(span, "foo", `"bar"`, "baz"), `2..3: unexpected "foo" (expected "bar" or baz)`},
		{combi.Unexpected(span, byte('b')), `2..3: unexpected 'b'`},
		{combi.Unexpected(span, 42, "string"), `2..3: unexpected 42 (expected string)`},
		{combi.UnexpectedEOF(span, "';'"), `2..3: unexpected end of input (expected ';')`},
		{&combi.UnexpectedError{At: span}, `2..3: unexpected input`},
	}
	for _, test := range tests {
		require.EqualError(t, test.err, test.expected)
	}
}

func TestMergeFillsFound(t *testing.T) {
	bare := &combi.UnexpectedError{At: combi.Span{Start: 0, End: 1}}
	eof := combi.UnexpectedEOF(combi.Span{Start: 0, End: 0}, "x")
	merged := bare.Merge(eof).(*combi.UnexpectedError)
	require.True(t, merged.EOF)
	require.Equal(t, []string{"x"}, merged.Expected)
	require.Equal(t, bare, bare.Merge(combi.Errorf(combi.Span{}, "other")))
}

type stringer struct{}

func (stringer) String() string { return "tok" }

func TestDescribe(t *testing.T) {
	require.Equal(t, `'\n'`, combi.Describe('\n'))
	require.Equal(t, `"a b"`, combi.Describe("a b"))
	require.Equal(t, `"tok"`, combi.Describe(stringer{}))
	require.Equal(t, `1.5`, combi.Describe(1.5))
}

func TestCustomError(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := combi.Custom(combi.Span{Start: 1, End: 2}, fmt.Errorf("wrapped: %w", sentinel))
	require.EqualError(t, err, "1..2: wrapped: sentinel")
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, combi.Span{Start: 1, End: 2}, err.Span())

	// Parse errors pass through unchanged.
	unexpected := combi.Unexpected(combi.Span{}, 'x')
	require.Same(t, unexpected, combi.Custom(combi.Span{Start: 5, End: 6}, unexpected))
}

func TestRecoveryError(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := &combi.RecoveryError{Errors: []error{
		combi.At(0, combi.Unexpected(combi.Span{Start: 0, End: 1}, 'x')),
		combi.At(4, combi.Custom(combi.Span{Start: 3, End: 4}, sentinel)),
	}}
	require.EqualError(t, err, "0..1: unexpected 'x'\n3..4: sentinel")
	require.ErrorIs(t, err, sentinel)
	var unexpected *combi.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
	require.Equal(t, "no errors", (&combi.RecoveryError{}).Error())
}
