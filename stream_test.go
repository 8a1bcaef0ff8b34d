package combi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combi"
)

func TestRewindIsExact(t *testing.T) {
	type state struct{ mutations int }
	st := &state{}
	inp := combi.NewStream(combi.String("héllo"), combi.WithState(st))
	start := inp.Save()
	_, _ = inp.Next()
	inp.Emit(combi.At(0, combi.Errorf(combi.Span{}, "first")))
	cp := inp.Save()
	require.Equal(t, 1, cp.Offset())

	_, _ = inp.Next()
	_, _ = inp.Next()
	inp.Emit(combi.At(3, combi.Errorf(combi.Span{}, "second")))
	combi.StateOf[state](inp).mutations++
	require.Equal(t, 4, inp.Offset())
	require.Equal(t, "él", inp.SliceSince(cp))
	require.Equal(t, combi.Span{Start: 1, End: 4}, inp.SpanSince(cp))

	inp.Rewind(cp)
	require.Equal(t, 1, inp.Offset())
	require.Len(t, inp.Errors(), 1)
	require.Equal(t, 1, st.mutations, "state is not transactional")

	tok, ok := inp.Peek()
	require.True(t, ok)
	require.Equal(t, 'é', tok)
	require.Equal(t, 1, inp.Offset())
	require.Equal(t, "h", inp.Slice(start, cp))
}

func TestRewindAfterFailedAlternative(t *testing.T) {
	emitting := combi.Verify(combi.Then(just('a'), just('b')), func(out combi.Pair[rune, rune], span combi.Span, emit func(combi.Error)) combi.Pair[rune, rune] {
		emit(combi.Errorf(span, "discarded"))
		return out
	})
	// The first alternative emits an error and then fails, so its error must
	// be discarded when the second alternative is tried.
	p := combi.Or(combi.Map(combi.Then(emitting, just('!')), func(p combi.Pair[combi.Pair[rune, rune], rune]) string { return "first" }),
		combi.Map(combi.Seq[rune, string]('a', 'b', '?'), func(string) string { return "second" }))
	out, err := combi.Parse(p, combi.String("ab?"))
	require.NoError(t, err)
	require.Equal(t, "second", out)
}

func TestByteInput(t *testing.T) {
	inp := combi.NewStream(combi.Bytes([]byte("ab")))
	tok, ok := inp.Next()
	require.True(t, ok)
	require.Equal(t, byte('a'), tok)
	_, _ = inp.Next()
	_, ok = inp.Next()
	require.False(t, ok)
	require.Equal(t, 2, inp.Offset())
}
