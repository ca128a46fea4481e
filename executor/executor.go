// Package executor reduces an expression tree to its value.
package executor

import (
	"fmt"

	"go.creack.net/gocalc/ast"
)

func evaluateBinaryExpr(expr *ast.BinaryExpr) float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)
	switch expr.Op {
	case ast.OpAdd:
		return left + right
	case ast.OpSubtract:
		return left - right
	case ast.OpMultiply:
		return left * right
	case ast.OpDivide:
		// IEEE-754 semantics: x/0 is ±Inf and 0/0 is NaN.
		return left / right
	default:
		panic(fmt.Errorf("unsupported operator %d", expr.Op))
	}
}

// Evaluate walks the tree in post-order and returns its value.
func Evaluate(expr ast.Expr) float64 {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return e.Value
	case *ast.BinaryExpr:
		return evaluateBinaryExpr(e)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
