// Package lexer turns an arithmetic expression into a flat sequence of tokens.
package lexer

import (
	"math"
	"unicode/utf8"
)

// List of runes that end a pending number and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokMultiply,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

// fraction accumulates the digits following a decimal point.
type fraction struct {
	value float64
	power int // Place of the next digit, -1 for tenths.
}

type Lexer struct {
	input string

	tokens []Token

	atEOF bool

	pos int // Current byte position in input.
	col int // Column of the last rune read, starting at 1.

	// Pending number, if any.
	hasNumber bool
	number    float64
	start     int // Column where the pending number started.
	frac      *fraction
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Scan is a shortcut for New(input).Scan().
func Scan(input string) ([]Token, error) {
	return New(input).Scan()
}

// Scan reads the whole input and returns its tokens, always terminated by a
// single TokEOF. On the first invalid rune the scan stops and only the error
// is returned.
func (l *Lexer) Scan() ([]Token, error) {
	l.reset()
	for {
		r := l.next()
		switch {
		case l.atEOF:
			l.flush()
			l.emit(TokEOF, l.col+1)
			return l.tokens, nil
		case r >= '0' && r <= '9':
			l.acceptDigit(r)
		case r == '.':
			if err := l.openFraction(); err != nil {
				return nil, err
			}
		case r == ' ':
			l.flush()
		default:
			tt, ok := singles[r]
			if !ok {
				return nil, l.errorf(ErrInvalidCharacter, r)
			}
			l.flush()
			l.emit(tt, l.col)
		}
	}
}

func (l *Lexer) reset() {
	l.tokens = nil
	l.atEOF = false
	l.pos = 0
	l.col = 0
	l.hasNumber = false
	l.number = 0
	l.frac = nil
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.col++
	return r
}

func (l *Lexer) acceptDigit(r rune) {
	digit := float64(r - '0')
	if l.frac != nil {
		// Places are scaled one at a time, so "0.7" lexes to 0.7000000000000001.
		l.frac.value += digit * math.Pow10(l.frac.power)
		l.frac.power--
		return
	}
	if !l.hasNumber {
		l.hasNumber = true
		l.start = l.col
	}
	l.number = l.number*10 + digit
}

func (l *Lexer) openFraction() error {
	if !l.hasNumber || l.frac != nil {
		return l.errorf(ErrMismatchedDecimalPoint, '.')
	}
	l.frac = &fraction{power: -1}
	return nil
}

// flush emits the pending number, if any.
func (l *Lexer) flush() {
	if !l.hasNumber {
		return
	}
	value := l.number
	if l.frac != nil {
		value += l.frac.value
	}
	l.tokens = append(l.tokens, Token{Type: TokNumber, Value: value, Pos: l.start})
	l.hasNumber = false
	l.number = 0
	l.frac = nil
}

func (l *Lexer) emit(tt TokenType, col int) {
	l.tokens = append(l.tokens, Token{Type: tt, Pos: col})
}

func (l *Lexer) errorf(err error, r rune) error {
	return &Error{
		Err:  err,
		Char: r,
		Pos:  l.col,
	}
}
