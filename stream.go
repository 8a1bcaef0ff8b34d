package combi

import (
	"fmt"
	"io"
)

// Input is a random-access source of tokens.
//
// Offsets are opaque, monotonically increasing positions: byte offsets for
// text, indices for token slices. Offset 0 is the start of input.
type Input[T, L any] interface {
	// Next returns the token at offset and the offset following it, or false
	// at end of input.
	Next(offset int) (tok T, next int, ok bool)
	// Slice returns the input between two offsets.
	Slice(start, end int) L
}

// Span is a half-open range of input offsets.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start, s.End) }

// Checkpoint marks a position in a Stream that can later be rewound to.
type Checkpoint struct {
	offset int
	errs   int
}

// Offset of the checkpoint.
func (c Checkpoint) Offset() int { return c.offset }

// Stream is the mutable cursor a parse is driven over.
//
// A Stream is owned by a single parse and must not be shared.
type Stream[T, L any] struct {
	input  Input[T, L]
	offset int
	state  any
	errs   []*Located
	merge  MergeFunc
	trace  io.Writer
	depth  int
	max    int
}

// NewStream creates a Stream positioned at the start of input.
func NewStream[T, L any](input Input[T, L], options ...Option) *Stream[T, L] {
	cfg := newConfig(options)
	return &Stream[T, L]{
		input: input,
		state: cfg.state,
		merge: cfg.merge,
		trace: cfg.trace,
		max:   cfg.maxErrors,
	}
}

// Save the current position.
func (s *Stream[T, L]) Save() Checkpoint {
	return Checkpoint{offset: s.offset, errs: len(s.errs)}
}

// Rewind to a previously saved checkpoint.
//
// Non-fatal errors recorded after the checkpoint are discarded. Mutations of
// the user state are not undone.
func (s *Stream[T, L]) Rewind(c Checkpoint) {
	s.offset = c.offset
	if c.errs < len(s.errs) {
		s.errs = s.errs[:c.errs]
	}
}

// Offset of the cursor.
func (s *Stream[T, L]) Offset() int { return s.offset }

// Next consumes and returns the next token.
func (s *Stream[T, L]) Next() (T, bool) {
	tok, next, ok := s.input.Next(s.offset)
	if ok {
		s.offset = next
	}
	return tok, ok
}

// Peek returns the next token without consuming it.
func (s *Stream[T, L]) Peek() (T, bool) {
	tok, _, ok := s.input.Next(s.offset)
	return tok, ok
}

// Slice of the input between two checkpoints.
func (s *Stream[T, L]) Slice(from, to Checkpoint) L {
	return s.input.Slice(from.offset, to.offset)
}

// SliceSince returns the input consumed since a checkpoint.
func (s *Stream[T, L]) SliceSince(from Checkpoint) L {
	return s.input.Slice(from.offset, s.offset)
}

// SpanSince returns the span consumed since a checkpoint.
func (s *Stream[T, L]) SpanSince(from Checkpoint) Span {
	return Span{Start: from.offset, End: s.offset}
}

// State returns the user state passed with WithState, or nil.
func (s *Stream[T, L]) State() any { return s.state }

// Emit records a non-fatal error.
func (s *Stream[T, L]) Emit(err *Located) {
	s.errs = append(s.errs, err)
}

// errorsSince returns a copy of the non-fatal errors recorded after a checkpoint.
func (s *Stream[T, L]) errorsSince(c Checkpoint) []*Located {
	if c.errs >= len(s.errs) {
		return nil
	}
	return append([]*Located(nil), s.errs[c.errs:]...)
}

// Errors returns the non-fatal errors recorded so far.
func (s *Stream[T, L]) Errors() []*Located { return s.errs }

// Merge two errors from competing alternatives using the configured policy.
func (s *Stream[T, L]) Merge(a, b *Located) *Located {
	if s.merge == nil {
		return Prioritize(a, b)
	}
	return s.merge(a, b)
}

// StateOf returns the user state of a Stream as a *S.
//
// It panics if the state was not set with WithState(*S).
func StateOf[S, T, L any](s *Stream[T, L]) *S {
	state, ok := s.state.(*S)
	if !ok {
		var zero S
		panic(fmt.Sprintf("combi: parser state is %T, not *%T", s.state, zero))
	}
	return state
}

func (s *Stream[T, L]) canRecover() bool {
	return s.max <= 0 || len(s.errs) < s.max
}
