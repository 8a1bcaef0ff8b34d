// Package lexer turns source text into tokens for parsers built with combi.
//
// A Definition lexes a whole source string up front. SimpleDefinition is the only
// implementation, matching an ordered list of regular expression rules. Tokens adapts the
// result into a combi.Input, and Type, Literal and Value build parsers over it.
package lexer
