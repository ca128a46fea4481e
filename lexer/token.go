package lexer

import (
	"fmt"
	"slices"
	"strconv"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokNone TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokMultiply
	TokSlash

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokNone: "NONE",
	TokEOF:  "EOF",

	TokNumber: "NUMBER",

	TokPlus:     "PLUS",
	TokMinus:    "MINUS",
	TokMultiply: "MULTIPLY",
	TokSlash:    "SLASH",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value float64 // Only set for TokNumber.

	Pos int // Column of the first rune of the token, starting at 1.
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokNumber:
		return fmt.Sprintf("%s[%d]: %s", t.Type, t.Pos, strconv.FormatFloat(t.Value, 'g', -1, 64))
	}
	return fmt.Sprintf("%s[%d]", t.Type, t.Pos)
}
