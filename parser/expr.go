package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	tok, ok := p.advance()
	if !ok {
		return nil, errorAt(ErrExpectedNumber, tok)
	}
	// TokEOF has no nud handler and fails as a missing prefix.
	nudFn, exists := p.nudLookupTable[tok.Type]
	if !exists {
		return nil, errorAt(ErrExpectedAPrefix, tok)
	}
	left, err := nudFn(p, tok)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for {
		next, _ := p.peek()
		nextBP := p.bindingPowerLookupTable[next.Type]
		if nextBP <= bp {
			return left, nil
		}
		p.advance()
		ledFn, exists := p.ledLookupTable[next.Type]
		if !exists {
			return nil, errorAt(ErrExpectedAnOperator, next)
		}
		if left, err = ledFn(p, left, next, nextBP); err != nil {
			return nil, err
		}
	}
}

func parsePrimaryExpr(p *parser, tok lexer.Token) (ast.Expr, error) {
	if tok.Type != lexer.TokNumber {
		return nil, errorAt(ErrExpectedNumber, tok)
	}
	return &ast.NumberExpr{Value: tok.Value}, nil
}

func parseGroupingExpr(p *parser, open lexer.Token) (ast.Expr, error) {
	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if closing, ok := p.advance(); !ok || closing.Type != lexer.TokParenRight {
		return nil, errorAt(ErrMismatchedParentheses, open)
	}
	return inner, nil
}

// parsePrefixExpr handles unary minus, which only applies to a literal.
func parsePrefixExpr(p *parser, minus lexer.Token) (ast.Expr, error) {
	tok, ok := p.advance()
	if !ok || tok.Type != lexer.TokNumber {
		return nil, errorAt(ErrMismatchedMinusSign, minus)
	}
	return &ast.NumberExpr{Value: -tok.Value}, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, operator lexer.Token, bp bindingPower) (ast.Expr, error) {
	op, ok := binaryOperators[operator.Type]
	if !ok {
		return nil, errorAt(ErrExpectedAnOperator, operator)
	}
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Op:    op,
		Left:  left,
		Right: right,
	}, nil
}
