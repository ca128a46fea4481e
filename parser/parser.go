// Package parser builds an expression tree from lexer tokens using
// precedence climbing.
package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the next token to read.

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	return p
}

// Parse builds the expression tree for the whole token sequence. The
// sequence must hold a single expression followed by TokEOF.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := newParser(tokens)
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// Evaluate parses the tokens and reduces the tree to its value.
func Evaluate(tokens []lexer.Token) (float64, error) {
	expr, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	return executor.Evaluate(expr), nil
}

// EvalString scans, parses and evaluates input.
func EvalString(input string) (float64, error) {
	tokens, err := lexer.Scan(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// advance returns the token under the cursor and moves past it. ok is false
// once the sequence is exhausted.
func (p *parser) advance() (tok lexer.Token, ok bool) {
	tok, ok = p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// peek returns the token under the cursor without consuming it.
func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokNone}, false
	}
	return p.tokens[p.pos], true
}

// expectEnd checks that nothing but EOF is left after the top-level
// expression.
func (p *parser) expectEnd() error {
	tok, ok := p.peek()
	if !ok || tok.Type == lexer.TokEOF {
		return nil
	}
	if tok.Type == lexer.TokParenRight {
		return errorAt(ErrMismatchedParentheses, tok)
	}
	return errorAt(ErrExpectedAnOperator, tok)
}
