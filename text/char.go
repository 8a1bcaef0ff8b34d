package text

import (
	"unicode"
	"unicode/utf8"
)

// Char is the set of token types text parsers operate on: Unicode code
// points, bytes (treated as ASCII), and extended grapheme clusters.
type Char interface {
	rune | byte | Grapheme
}

// Text is the set of slice types produced by text inputs.
type Text interface {
	~string | ~[]byte
}

// IsInlineWhitespace returns true for whitespace that is not part of a
// newline.
func IsInlineWhitespace[C Char](c C) bool {
	switch c := any(c).(type) {
	case rune:
		return c == ' ' || c == '\t'
	case byte:
		return c == ' ' || c == '\t'
	case Grapheme:
		return c == " " || c == "\t"
	}
	panic("unreachable")
}

// IsWhitespace returns true for whitespace, including newlines.
func IsWhitespace[C Char](c C) bool {
	switch c := any(c).(type) {
	case rune:
		return unicode.IsSpace(c)
	case byte:
		return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
	case Grapheme:
		for _, r := range string(c) {
			if !unicode.IsSpace(r) {
				return false
			}
		}
		return c != ""
	}
	panic("unreachable")
}

var newlines = map[rune]bool{
	'\n':     true,
	'\r':     true,
	'\x0B':   true,
	'\x0C':   true,
	'\u0085': true,
	'\u2028': true,
	'\u2029': true,
}

// IsNewline returns true for characters that break lines.
//
// As a grapheme cluster, "\r\n" is a single newline.
func IsNewline[C Char](c C) bool {
	switch c := any(c).(type) {
	case rune:
		return newlines[c]
	case byte:
		return c == '\n' || c == '\r' || c == '\x0B' || c == '\x0C'
	case Grapheme:
		if c == "\r\n" {
			return true
		}
		r, n := utf8.DecodeRuneInString(string(c))
		return n == len(c) && newlines[r]
	}
	panic("unreachable")
}

// DigitZero returns '0' as a C.
func DigitZero[C Char]() C {
	var c C
	switch p := any(&c).(type) {
	case *rune:
		*p = '0'
	case *byte:
		*p = '0'
	case *Grapheme:
		*p = "0"
	}
	return c
}

// IsDigit returns true if "c" is an ASCII digit in the given radix, which
// must be between 2 and 36.
func IsDigit[C Char](c C, radix int) bool {
	if radix < 2 || radix > 36 {
		panic("text: radix must be between 2 and 36")
	}
	b, ok := ToASCII(c)
	if !ok {
		return false
	}
	var v int
	switch {
	case b >= '0' && b <= '9':
		v = int(b - '0')
	case b >= 'a' && b <= 'z':
		v = int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		v = int(b-'A') + 10
	default:
		return false
	}
	return v < radix
}

// IsIdentStart returns true if "c" may start an identifier: XID_Start or an
// underscore.
func IsIdentStart[C Char](c C) bool {
	switch c := any(c).(type) {
	case rune:
		return c == '_' || isXIDStart(c)
	case byte:
		return c == '_' || (c < utf8.RuneSelf && isXIDStart(rune(c)))
	case Grapheme:
		first, rest := c.Split()
		if first != '_' && !isXIDStart(first) {
			return false
		}
		for _, r := range rest {
			if !isXIDContinue(r) {
				return false
			}
		}
		return true
	}
	panic("unreachable")
}

// IsIdentContinue returns true if "c" may continue an identifier.
func IsIdentContinue[C Char](c C) bool {
	switch c := any(c).(type) {
	case rune:
		return isXIDContinue(c)
	case byte:
		return c < utf8.RuneSelf && isXIDContinue(rune(c))
	case Grapheme:
		for _, r := range string(c) {
			if !isXIDContinue(r) {
				return false
			}
		}
		return c != ""
	}
	panic("unreachable")
}

// ToASCII returns "c" as an ASCII byte, if it is one.
func ToASCII[C Char](c C) (byte, bool) {
	switch c := any(c).(type) {
	case rune:
		return byte(c), c >= 0 && c < utf8.RuneSelf
	case byte:
		return c, true
	case Grapheme:
		if len(c) == 1 && c[0] < utf8.RuneSelf {
			return c[0], true
		}
		return 0, false
	}
	panic("unreachable")
}

func isXIDStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isXIDContinue(r rune) bool {
	return isXIDStart(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)
}
