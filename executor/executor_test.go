package executor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/executor"
)

func num(v float64) *ast.NumberExpr { return &ast.NumberExpr{Value: v} }

func bin(op ast.Operator, left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

type testCase struct {
	name string
	expr ast.Expr
	want float64
}

func TestEvaluate(t *testing.T) {
	tests := []testCase{
		{name: "literal", expr: num(4.5), want: 4.5},
		{name: "add", expr: bin(ast.OpAdd, num(2), num(3)), want: 5},
		{name: "subtract", expr: bin(ast.OpSubtract, num(2), num(3)), want: -1},
		{name: "multiply", expr: bin(ast.OpMultiply, num(2), num(3)), want: 6},
		{name: "divide", expr: bin(ast.OpDivide, num(3), num(2)), want: 1.5},
		{name: "left first", expr: bin(ast.OpSubtract, bin(ast.OpSubtract, num(8), num(3)), num(2)), want: 3},
		{name: "right nested", expr: bin(ast.OpSubtract, num(8), bin(ast.OpSubtract, num(3), num(2))), want: 7},
		{name: "negative literal", expr: bin(ast.OpMultiply, num(3), num(-5)), want: -15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, executor.Evaluate(tt.expr))
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(executor.Evaluate(bin(ast.OpDivide, num(1), num(0))), 1))
	assert.True(t, math.IsInf(executor.Evaluate(bin(ast.OpDivide, num(-1), num(0))), -1))
	assert.True(t, math.IsNaN(executor.Evaluate(bin(ast.OpDivide, num(0), num(0)))))
}

type bogusExpr struct{ ast.Expr }

func TestEvaluateUnsupported(t *testing.T) {
	require.Panics(t, func() { executor.Evaluate(bogusExpr{}) })
	require.Panics(t, func() { executor.Evaluate(bin(ast.Operator(42), num(1), num(2))) })
}
