package combi

// Mode selects how a parser is executed.
//
// In Check mode outputs are never constructed: a parser only reports success
// or failure and moves the cursor. In Emit mode outputs are fully built.
// Every parser must move the cursor identically, and succeed or fail
// identically, in both modes.
type Mode uint8

const (
	// Check validates input without materialising outputs.
	Check Mode = iota
	// Emit materialises outputs.
	Emit
)

func (m Mode) String() string {
	if m == Emit {
		return "emit"
	}
	return "check"
}

// Unit is the output of parsers that produce no value.
type Unit struct{}

// Pair is the output of Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Bind constructs a value with f, but only in Emit mode.
func Bind[O any](m Mode, f func() O) O {
	if m == Emit {
		return f()
	}
	var zero O
	return zero
}

// Apply maps a mode-shaped value with f, but only in Emit mode.
func Apply[A, B any](m Mode, a A, f func(A) B) B {
	if m == Emit {
		return f(a)
	}
	var zero B
	return zero
}

// Combine merges two mode-shaped values with f, but only in Emit mode.
func Combine[A, B, C any](m Mode, a A, b B, f func(A, B) C) C {
	if m == Emit {
		return f(a, b)
	}
	var zero C
	return zero
}
