// Package ast defines the abstract syntax tree produced by the parser:
// statement and expression nodes for the restricted script dialect.
package ast

import "github.com/redis-eval/redis-eval/internal/token"

// Node is implemented by every statement and expression node.
type Node interface {
	Pos() token.Position
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Block is an ordered sequence of statements sharing a scope.
type Block []Stmt

// Field is one entry of a table constructor: either positional
// ([]Expr.Key == nil), named ({name = expr}), or keyed ({[expr] = expr}).
type Field struct {
	Key   Expr // nil for a positional field
	Value Expr
}
