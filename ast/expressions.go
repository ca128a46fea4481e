package ast

import (
	"fmt"
	"strconv"
)

// NumberExpr is a literal value.
type NumberExpr struct {
	Value float64
}

func (*NumberExpr) expr() {}

func (n *NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*BinaryExpr) expr() {}

func (b *BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op, b.Right.Dump())
}
