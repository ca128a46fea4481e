package lexer

import (
	"errors"
	"fmt"
)

// Errors reported by the lexer. They are wrapped in an *Error.
var (
	ErrInvalidCharacter       = errors.New("invalid character")
	ErrMismatchedDecimalPoint = errors.New("mismatched decimal point")
)

// Error is a lexing failure at a given column.
type Error struct {
	Err  error
	Char rune // Offending rune.
	Pos  int  // Column of Char, starting at 1.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at column %d", e.Err, e.Char, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}
