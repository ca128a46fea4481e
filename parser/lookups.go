package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

type bindingPower int

// Only the relative order matters. Any token without an entry binds at
// bpDefault, which ends the current expression.
const (
	bpDefault        bindingPower = 0
	bpAdditive       bindingPower = 10
	bpMultiplicative bindingPower = 20
)

type nudHandler func(*parser, lexer.Token) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, lexer.Token, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

// binaryOperators maps infix tokens to the tree operator they build.
var binaryOperators = map[lexer.TokenType]ast.Operator{
	lexer.TokPlus:     ast.OpAdd,
	lexer.TokMinus:    ast.OpSubtract,
	lexer.TokMultiply: ast.OpMultiply,
	lexer.TokSlash:    ast.OpDivide,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMultiply, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)

	// Literals & grouping.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
}
