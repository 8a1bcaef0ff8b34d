package combi

// Declared is a parser whose definition is provided after construction, for
// mutually recursive grammars.
//
// A Declared parser must be defined before it is first used.
type Declared[T, L, O any] struct {
	p Parser[T, L, O]
}

// Declare a parser to be defined later with Define.
func Declare[T, L, O any]() *Declared[T, L, O] {
	return &Declared[T, L, O]{}
}

// Define the parser. It panics if called twice.
func (d *Declared[T, L, O]) Define(p Parser[T, L, O]) {
	if d.p != nil {
		panic("combi: parser defined twice")
	}
	d.p = p
}

// Parse implements Parser.
func (d *Declared[T, L, O]) Parse(inp *Stream[T, L], mode Mode) (O, *Located) {
	if d.p == nil {
		panic("combi: parser used before it was defined")
	}
	return d.p.Parse(inp, mode)
}

// Recursive constructs a parser that may refer to itself.
//
// eg.
//
//	nested := Recursive(func(self Parser[rune, string, int]) Parser[rune, string, int] {
//		return Or(Map(DelimitedBy(self, Just[rune, string]('('), Just[rune, string](')')), inc), To(Empty[rune, string](), 0))
//	})
func Recursive[T, L, O any](f func(self Parser[T, L, O]) Parser[T, L, O]) Parser[T, L, O] {
	d := Declare[T, L, O]()
	d.Define(f(d))
	return d
}
