package combi

import (
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Container accumulates the outputs of a repetition into a C.
type Container[T, C any] interface {
	// Default returns an empty C.
	Default() C
	// Push an item into c.
	Push(c *C, item T)
}

type discard[T any] struct{}

// Discard drops every item. Use it when only the fact that a repetition
// matched is of interest.
func Discard[T any]() Container[T, Unit] { return discard[T]{} }

func (discard[T]) Default() Unit { return Unit{} }
func (discard[T]) Push(*Unit, T) {}

type sliceOf[T any] struct{}

// SliceOf collects items in order.
func SliceOf[T any]() Container[T, []T] { return sliceOf[T]{} }

func (sliceOf[T]) Default() []T        { return nil }
func (sliceOf[T]) Push(c *[]T, item T) { *c = append(*c, item) }

type stringOf struct{}

// StringOf concatenates runes into a string.
func StringOf() Container[rune, string] { return stringOf{} }

func (stringOf) Default() string           { return "" }
func (stringOf) Push(c *string, item rune) { *c += string(item) }

type bytesOf struct{}

// BytesOf appends runes to a byte slice as UTF-8.
func BytesOf() Container[rune, []byte] { return bytesOf{} }

func (bytesOf) Default() []byte           { return nil }
func (bytesOf) Push(c *[]byte, item rune) { *c = utf8.AppendRune(*c, item) }

type mapOf[K comparable, V any] struct{}

// MapOf inserts key/value pairs into a map. Later duplicates overwrite
// earlier ones.
func MapOf[K comparable, V any]() Container[Pair[K, V], map[K]V] { return mapOf[K, V]{} }

func (mapOf[K, V]) Default() map[K]V { return map[K]V{} }
func (mapOf[K, V]) Push(c *map[K]V, item Pair[K, V]) {
	(*c)[item.First] = item.Second
}

type setOf[T comparable] struct{}

// SetOf inserts items into a set. Duplicates are ignored.
func SetOf[T comparable]() Container[T, map[T]struct{}] { return setOf[T]{} }

func (setOf[T]) Default() map[T]struct{} { return map[T]struct{}{} }
func (setOf[T]) Push(c *map[T]struct{}, item T) {
	(*c)[item] = struct{}{}
}

type btreeMapOf[K constraints.Ordered, V any] struct{}

// BTreeMapOf inserts key/value pairs into an ordered map. Later duplicates
// overwrite earlier ones.
func BTreeMapOf[K constraints.Ordered, V any]() Container[Pair[K, V], *btree.Map[K, V]] {
	return btreeMapOf[K, V]{}
}

func (btreeMapOf[K, V]) Default() *btree.Map[K, V] { return new(btree.Map[K, V]) }
func (btreeMapOf[K, V]) Push(c **btree.Map[K, V], item Pair[K, V]) {
	(*c).Set(item.First, item.Second)
}

type btreeSetOf[K constraints.Ordered] struct{}

// BTreeSetOf inserts items into an ordered set. Duplicates are ignored.
func BTreeSetOf[K constraints.Ordered]() Container[K, *btree.Set[K]] { return btreeSetOf[K]{} }

func (btreeSetOf[K]) Default() *btree.Set[K] { return new(btree.Set[K]) }
func (btreeSetOf[K]) Push(c **btree.Set[K], item K) {
	(*c).Insert(item)
}

// ContainerExactly accumulates exactly Len() items into a C without
// intermediate collections.
type ContainerExactly[T, C any] interface {
	// Len is the number of items the container holds.
	Len() int
	// Uninit returns fresh storage for Len() items, none initialised.
	Uninit() Uninit[T, C]
}

// Uninit is storage for a fixed number of items of which only a prefix has
// been written.
//
// The caller must write slots in order, and then either Take the result once
// all slots are written, or DropBefore(i) when exactly [0, i) are written.
// Implementations panic if these preconditions are violated.
type Uninit[T, C any] interface {
	// Write item into slot i.
	Write(i int, item T)
	// DropBefore releases the initialised slots [0, i).
	DropBefore(i int)
	// Take returns the fully initialised result.
	Take() C
}

// Dropper is implemented by values that must be released when a partially
// built fixed-size output is abandoned.
type Dropper interface {
	Drop()
}

type discardExactly[T any] struct{ n int }

// DiscardExactly accepts exactly n items and drops them.
func DiscardExactly[T any](n int) ContainerExactly[T, Unit] { return discardExactly[T]{n} }

func (d discardExactly[T]) Len() int                { return d.n }
func (d discardExactly[T]) Uninit() Uninit[T, Unit] { return discardSlots[T]{} }

type discardSlots[T any] struct{}

func (discardSlots[T]) Write(int, T)   {}
func (discardSlots[T]) DropBefore(int) {}
func (discardSlots[T]) Take() Unit     { return Unit{} }

type arrayOf[T, A any] struct {
	n    int
	from func([]T) A
}

// ArrayOf accepts exactly n items and converts them with "from", which
// receives a slice of length n it may retain.
//
// eg.
//
//	ArrayOf(3, func(s []rune) [3]rune { return [3]rune(s) })
func ArrayOf[T, A any](n int, from func([]T) A) ContainerExactly[T, A] {
	return arrayOf[T, A]{n: n, from: from}
}

func (a arrayOf[T, A]) Len() int { return a.n }
func (a arrayOf[T, A]) Uninit() Uninit[T, A] {
	return &Slots[T, A]{vals: make([]T, a.n), from: a.from}
}

// SliceExactly accepts exactly n items into a slice of length n.
func SliceExactly[T any](n int) ContainerExactly[T, []T] {
	return ArrayOf(n, func(s []T) []T { return s })
}

// Array2 accepts exactly two items into an array.
func Array2[T any]() ContainerExactly[T, [2]T] {
	return ArrayOf(2, func(s []T) [2]T { return [2]T(s) })
}

// Array3 accepts exactly three items into an array.
func Array3[T any]() ContainerExactly[T, [3]T] {
	return ArrayOf(3, func(s []T) [3]T { return [3]T(s) })
}

// Array4 accepts exactly four items into an array.
func Array4[T any]() ContainerExactly[T, [4]T] {
	return ArrayOf(4, func(s []T) [4]T { return [4]T(s) })
}

// Slots is the Uninit storage used by ArrayOf.
//
// It tracks how many slots are initialised and enforces the Uninit
// preconditions. Once taken or dropped, a Slots must not be used again.
type Slots[T, A any] struct {
	vals []T
	init int
	done bool
	from func([]T) A
}

// Initialised returns the number of written slots.
func (s *Slots[T, A]) Initialised() int { return s.init }

func (s *Slots[T, A]) Write(i int, item T) {
	s.live("write")
	if i != s.init || i >= len(s.vals) {
		panic(fmt.Sprintf("combi: write to slot %d with %d of %d slots initialised", i, s.init, len(s.vals)))
	}
	s.vals[i] = item
	s.init++
}

func (s *Slots[T, A]) DropBefore(i int) {
	s.live("drop")
	if i != s.init {
		panic(fmt.Sprintf("combi: drop before slot %d with %d slots initialised", i, s.init))
	}
	var zero T
	for j := 0; j < i; j++ {
		if d, ok := any(s.vals[j]).(Dropper); ok {
			d.Drop()
		}
		s.vals[j] = zero
	}
	s.init = 0
	s.done = true
}

func (s *Slots[T, A]) Take() A {
	s.live("take")
	if s.init != len(s.vals) {
		panic(fmt.Sprintf("combi: take with %d of %d slots initialised", s.init, len(s.vals)))
	}
	s.done = true
	vals := s.vals
	s.vals = nil
	return s.from(vals)
}

func (s *Slots[T, A]) live(op string) {
	if s.done {
		panic("combi: " + op + " on released slots")
	}
}
