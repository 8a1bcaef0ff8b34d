package combi

// Foldl folds the items produced by "p" from left to right, starting from the
// head value.
//
// eg. to parse left-associative subtraction:
//
//	Foldl(Then(num, Repeated(Then(minus, num), SliceOf[Pair[rune, int]]())), sub)
func Foldl[T, L, A, B any](p Parser[T, L, Pair[A, []B]], f func(A, B) A) Parser[T, L, A] {
	return Map(p, func(pair Pair[A, []B]) A {
		acc := pair.First
		for _, item := range pair.Second {
			acc = f(acc, item)
		}
		return acc
	})
}

// Foldr folds the items produced by "p" from right to left, ending at the
// tail value.
func Foldr[T, L, A, B any](p Parser[T, L, Pair[[]A, B]], f func(A, B) B) Parser[T, L, B] {
	return Map(p, func(pair Pair[[]A, B]) B {
		acc := pair.Second
		for i := len(pair.First) - 1; i >= 0; i-- {
			acc = f(pair.First[i], acc)
		}
		return acc
	})
}
