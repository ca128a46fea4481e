// Package ast defines the expression tree built by the parser.
//
// The tree is strictly owned top-down: every node has at most one parent and
// there is no sharing between subtrees.
package ast

// Expr is a node of the expression tree.
type Expr interface {
	// Dump returns a fully parenthesized rendering of the expression.
	Dump() string
	expr()
}

// Operator is the kind of a binary expression.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}
