// Package combi constructs parsers by composing small parsers into larger ones.
//
// Every parser can be run in one of two modes. In Check mode it only
// validates input, never constructing outputs. In Emit mode it constructs
// its output. A parser moves the cursor identically in both modes, so
// combinators freely mix the two: separators and delimiters are matched in
// Check mode while the items between them are emitted.
//
// The supported combinators are:
//
//   - `Just`, `Seq`, `OneOf`, `NoneOf`, `Any`, `Select`, `End`, `Empty` Match tokens.
//   - `Then`, `IgnoreThen`, `ThenIgnore`, `ThenWith` Match in sequence.
//   - `DelimitedBy`, `PaddedBy` Match between delimiters.
//   - `Or`, `Choice`, `OrNot` Match one of the alternatives.
//   - `Rewind`, `Not`, `AndIs` Look ahead.
//   - `Repeated`, `SeparatedBy` Match 0 or more times.
//   - `RepeatedExactly`, `SeparatedByExactly` Match exactly N times.
//   - `Map`, `TryMap`, `MapSlice`, `To`, `Filter`, `Foldl`, `Foldr` Transform outputs.
//   - `MapErr`, `OrElse`, `RecoverWith` Handle errors.
//
// Here's an example of a parser for comma separated numbers in brackets.
//
//	digit := Select[rune, string](func(r rune) (rune, bool) { return r, r >= '0' && r <= '9' }, "digit")
//	num := ToSlice(Repeated(digit, Discard[rune]()).AtLeast(1))
//	list := DelimitedBy(
//	    SeparatedBy(num, Just[rune, string](','), SliceOf[string]()).AllowTrailing(),
//	    Just[rune, string]('['), Just[rune, string](']'),
//	)
//	nums, err := Parse(ThenIgnore(list, End[rune, string]()), String("[1,2,3]"))
//
// Parsers are immutable and may be shared between goroutines. All state of a
// parse lives in its Stream.
package combi
