package combi

import "unicode/utf8"

type stringInput string

// String returns an Input over the runes of "s". Offsets are byte offsets.
//
// Invalid UTF-8 decodes as utf8.RuneError, one byte at a time.
func String(s string) Input[rune, string] { return stringInput(s) }

func (s stringInput) Next(offset int) (rune, int, bool) {
	if offset >= len(s) {
		return 0, offset, false
	}
	r, n := utf8.DecodeRuneInString(string(s[offset:]))
	return r, offset + n, true
}

func (s stringInput) Slice(start, end int) string { return string(s[start:end]) }

type bytesInput []byte

// Bytes returns an Input over the bytes of "b".
func Bytes(b []byte) Input[byte, []byte] { return bytesInput(b) }

func (b bytesInput) Next(offset int) (byte, int, bool) {
	if offset >= len(b) {
		return 0, offset, false
	}
	return b[offset], offset + 1, true
}

func (b bytesInput) Slice(start, end int) []byte { return b[start:end:end] }

type sliceInput[T any] []T

// SliceInput returns an Input over the elements of "s", eg. pre-lexed tokens.
func SliceInput[T any](s []T) Input[T, []T] { return sliceInput[T](s) }

func (s sliceInput[T]) Next(offset int) (T, int, bool) {
	if offset >= len(s) {
		var zero T
		return zero, offset, false
	}
	return s[offset], offset + 1, true
}

func (s sliceInput[T]) Slice(start, end int) []T { return s[start:end:end] }
