package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "integer", expr: &NumberExpr{Value: 2}, want: "2"},
		{name: "negative decimal", expr: &NumberExpr{Value: -1.25}, want: "-1.25"},
		{name: "infinity", expr: &NumberExpr{Value: math.Inf(1)}, want: "+Inf"},
		{
			name: "nested",
			expr: &BinaryExpr{
				Op:   OpAdd,
				Left: &NumberExpr{Value: 2},
				Right: &BinaryExpr{
					Op:    OpMultiply,
					Left:  &NumberExpr{Value: 2},
					Right: &NumberExpr{Value: 2},
				},
			},
			want: "(2 + (2 * 2))",
		},
		{
			name: "subtract divide",
			expr: &BinaryExpr{
				Op:    OpDivide,
				Left:  &BinaryExpr{Op: OpSubtract, Left: &NumberExpr{Value: 8}, Right: &NumberExpr{Value: 3}},
				Right: &NumberExpr{Value: 0.5},
			},
			want: "((8 - 3) / 0.5)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.Dump())
		})
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSubtract.String())
	assert.Equal(t, "*", OpMultiply.String())
	assert.Equal(t, "/", OpDivide.String())
	assert.Equal(t, "?", Operator(0).String())
}

// Only pointers are tree nodes, so the evaluator's type switch sees every
// possible node.
func TestOnlyPointersAreExprs(t *testing.T) {
	var _ Expr = (*NumberExpr)(nil)
	var _ Expr = (*BinaryExpr)(nil)

	_, ok := any(NumberExpr{}).(Expr)
	assert.False(t, ok, "NumberExpr value implements Expr")
	_, ok = any(BinaryExpr{}).(Expr)
	assert.False(t, ok, "BinaryExpr value implements Expr")
}
