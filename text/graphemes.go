package text

import (
	"unicode/utf8"

	"github.com/alecthomas/combi"
	"github.com/rivo/uniseg"
)

// Grapheme is a single extended grapheme cluster.
type Grapheme string

func (g Grapheme) String() string { return string(g) }

// Split the grapheme into its first code point and the remaining code points.
func (g Grapheme) Split() (rune, string) {
	r, n := utf8.DecodeRuneInString(string(g))
	return r, string(g[n:])
}

type graphemes string

// Graphemes returns an Input over the extended grapheme clusters of "s".
// Offsets are byte offsets.
func Graphemes(s string) combi.Input[Grapheme, string] { return graphemes(s) }

func (g graphemes) Next(offset int) (Grapheme, int, bool) {
	if offset >= len(g) {
		return "", offset, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(g[offset:]), -1)
	return Grapheme(cluster), offset + len(cluster), true
}

func (g graphemes) Slice(start, end int) string { return string(g[start:end]) }

// Segment splits "s" into grapheme clusters.
func Segment(s string) []Grapheme {
	out := make([]Grapheme, 0, uniseg.GraphemeClusterCount(s))
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, Grapheme(cluster))
	}
	return out
}
