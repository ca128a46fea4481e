package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/lexer"
)

// Errors reported by the parser. They are wrapped in an *Error.
var (
	ErrExpectedNumber        = errors.New("expected a number")
	ErrMismatchedParentheses = errors.New("missing ')' parenthesis")
	ErrMismatchedMinusSign   = errors.New("mismatched '-' sign")
	ErrExpectedAPrefix       = errors.New("expected a prefix")
	ErrExpectedAnOperator    = errors.New("expected an operator")
)

// Error is a parsing failure on a given token.
type Error struct {
	Err   error
	Token lexer.Token // Token the failure is reported on. TokNone when input ran out.
}

func errorAt(err error, tok lexer.Token) *Error {
	return &Error{Err: err, Token: tok}
}

func (e *Error) Error() string {
	switch e.Token.Type {
	case lexer.TokNone:
		return e.Err.Error()
	case lexer.TokEOF:
		return fmt.Sprintf("%s at end of input", e.Err)
	}
	return fmt.Sprintf("%s at column %d (%s)", e.Err, e.Token.Pos, e.Token.Type)
}

func (e *Error) Unwrap() error {
	return e.Err
}
