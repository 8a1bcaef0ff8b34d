// Package text provides parsers for textual input.
//
// The parsers are generic over the token type, which may be a rune (input
// from combi.String), a byte (input from combi.Bytes) or a Grapheme (input
// from Graphemes).
package text

import (
	"strconv"

	"github.com/alecthomas/combi"
)

// Whitespace matches any amount of whitespace, including none.
func Whitespace[C Char, L any]() combi.Repetition[C, L, combi.Unit, combi.Unit] {
	return combi.Repeated(combi.Ignored(is[C, L](IsWhitespace[C], "whitespace")), combi.Discard[combi.Unit]())
}

// InlineWhitespace matches any amount of whitespace other than newlines,
// including none.
func InlineWhitespace[C Char, L any]() combi.Repetition[C, L, combi.Unit, combi.Unit] {
	return combi.Repeated(combi.Ignored(is[C, L](IsInlineWhitespace[C], "whitespace")), combi.Discard[combi.Unit]())
}

// Newline matches a single newline.
//
// Recognised are "\n", "\r", "\r\n", vertical tab, form feed, and for
// Unicode input, next line, line separator and paragraph separator.
func Newline[C Char, L any]() combi.Parser[C, L, combi.Unit] {
	cr := is[C, L](func(c C) bool { b, ok := ToASCII(c); return ok && b == '\r' }, "newline")
	lf := is[C, L](func(c C) bool { b, ok := ToASCII(c); return ok && b == '\n' }, "newline")
	return combi.Or(
		combi.Ignored(combi.Then(cr, lf)),
		combi.Ignored(is[C, L](IsNewline[C], "newline")),
	)
}

// Digits matches one or more digits of the given radix.
//
// Leading zeroes are accepted. Use Int if they are not desirable.
//
// eg.
//
//	combi.ToSlice(text.Digits[rune, string](10))
func Digits[C Char, L any](radix int) combi.Repetition[C, L, C, combi.Unit] {
	return combi.Repeated(digit[C, L](radix), combi.Discard[C]()).AtLeast(1)
}

// Int matches a non-negative integer of the given radix, producing its text.
//
// An integer is a non-empty sequence of digits where the first digit is
// non-zero or the sequence has length one. "04" does not match.
func Int[C Char, L any](radix int) combi.Parser[C, L, L] {
	zero := DigitZero[C]()
	nonZero := is[C, L](func(c C) bool { return c != zero && IsDigit(c, radix) }, "non-zero digit")
	digits := combi.Repeated(digit[C, L](radix), combi.Discard[C]())
	return combi.ToSlice(combi.Or(
		combi.Ignored(combi.Then(nonZero, digits)),
		combi.Ignored(combi.ThenIgnore(combi.Just[C, L](zero), combi.Not(digit[C, L](radix)))),
	))
}

// Ident matches an identifier as defined by Unicode Standard Annex #31,
// with underscores allowed to start an identifier.
func Ident[C Char, L any]() combi.Parser[C, L, L] {
	return identifier[C, L](IsIdentStart[C], IsIdentContinue[C])
}

// Keyword matches the identifier "keyword", rejecting longer identifiers it
// is a prefix of.
//
// eg. Keyword("def") matches the start of "def(foo)" but not of "define".
func Keyword[C Char, L Text](keyword L) combi.Parser[C, L, L] {
	return matchIdent(Ident[C, L](), keyword)
}

// ASCIIIdent matches a C-style identifier, [a-zA-Z_][a-zA-Z0-9_]*.
func ASCIIIdent[C Char, L any]() combi.Parser[C, L, L] {
	return identifier[C, L](
		func(c C) bool {
			b, ok := ToASCII(c)
			return ok && (b == '_' || isASCIIAlpha(b))
		},
		func(c C) bool {
			b, ok := ToASCII(c)
			return ok && (b == '_' || isASCIIAlpha(b) || (b >= '0' && b <= '9'))
		},
	)
}

// ASCIIKeyword is Keyword for C-style identifiers.
func ASCIIKeyword[C Char, L Text](keyword L) combi.Parser[C, L, L] {
	return matchIdent(ASCIIIdent[C, L](), keyword)
}

// Padded matches "p" surrounded by any amount of whitespace.
func Padded[C Char, L, O any](p combi.Parser[C, L, O]) combi.Parser[C, L, O] {
	return combi.PaddedBy(p, Whitespace[C, L]())
}

func identifier[C Char, L any](start, cont func(C) bool) combi.Parser[C, L, L] {
	return combi.ToSlice(combi.Then(
		is[C, L](start, "identifier"),
		combi.Repeated(is[C, L](cont, "identifier"), combi.Discard[C]()),
	))
}

func matchIdent[C Char, L Text](ident combi.Parser[C, L, L], keyword L) combi.Parser[C, L, L] {
	expected := strconv.Quote(string(keyword))
	return combi.TryMap(ident, func(s L, span combi.Span) (L, error) {
		if string(s) != string(keyword) {
			return s, &combi.UnexpectedError{Expected: []string{expected}, Found: string(s), At: span}
		}
		return s, nil
	})
}

func digit[C Char, L any](radix int) combi.Parser[C, L, C] {
	return is[C, L](func(c C) bool { return IsDigit(c, radix) }, "digit")
}

func is[C Char, L any](pred func(C) bool, expected string) combi.Parser[C, L, C] {
	return combi.Select[C, L](func(c C) (C, bool) { return c, pred(c) }, expected)
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
