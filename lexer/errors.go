package lexer

import "fmt"

// Error represents an error while lexing.
type Error struct {
	Msg string
	Pos Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Msg: fmt.Sprintf(format, args...),
		Pos: pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
