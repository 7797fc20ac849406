package ast

import "github.com/redis-eval/redis-eval/internal/token"

// NilLit is the literal nil.
type NilLit struct{ Position token.Position }

// BoolLit is a literal true/false.
type BoolLit struct {
	Position token.Position
	Value    bool
}

// NumberLit is a numeric literal, already decoded to f64 by the lexer.
type NumberLit struct {
	Position token.Position
	Value    float64
}

// StringLit is a string literal, already decoded (escapes resolved).
type StringLit struct {
	Position token.Position
	Value    string
}

// VarargsExpr is the `...` expression, valid only inside a variadic
// function body.
type VarargsExpr struct{ Position token.Position }

// NameExpr references a local, global, or parameter binding.
type NameExpr struct {
	Position token.Position
	Name     string
}

// IndexExpr is `Target[Key]`.
type IndexExpr struct {
	Position token.Position
	Target   Expr
	Key      Expr
}

// FieldExpr is `Target.Name`, sugar for IndexExpr with a string key.
type FieldExpr struct {
	Position token.Position
	Target   Expr
	Name     string
}

// CallExpr is `Fn(Args...)`.
type CallExpr struct {
	Position token.Position
	Fn       Expr
	Args     []Expr
}

// MethodCallExpr is `Target:Name(Args...)`; the callee is looked up as a
// field of Target, and Target itself is prepended to the evaluated args.
type MethodCallExpr struct {
	Position token.Position
	Target   Expr
	Name     string
	Args     []Expr
}

// FunctionExpr is a function literal: `function(params, ...) body end`.
type FunctionExpr struct {
	Position    token.Position
	Params      []string
	IsVariadic  bool
	Body        Block
}

// TableConstructorExpr is `{ field, ... }`.
type TableConstructorExpr struct {
	Position token.Position
	Fields   []Field
}

// UnaryExpr is `op Operand` for `not`, `-`, and `#`.
type UnaryExpr struct {
	Position token.Position
	Op       token.Kind
	Operand  Expr
}

// BinaryExpr is `Left op Right` for all binary operators including `and`
// and `or`, which the evaluator must treat as short-circuiting.
type BinaryExpr struct {
	Position token.Position
	Op       token.Kind
	Left     Expr
	Right    Expr
}

func (e *NilLit) Pos() token.Position               { return e.Position }
func (e *BoolLit) Pos() token.Position               { return e.Position }
func (e *NumberLit) Pos() token.Position             { return e.Position }
func (e *StringLit) Pos() token.Position             { return e.Position }
func (e *VarargsExpr) Pos() token.Position           { return e.Position }
func (e *NameExpr) Pos() token.Position              { return e.Position }
func (e *IndexExpr) Pos() token.Position             { return e.Position }
func (e *FieldExpr) Pos() token.Position             { return e.Position }
func (e *CallExpr) Pos() token.Position              { return e.Position }
func (e *MethodCallExpr) Pos() token.Position        { return e.Position }
func (e *FunctionExpr) Pos() token.Position          { return e.Position }
func (e *TableConstructorExpr) Pos() token.Position  { return e.Position }
func (e *UnaryExpr) Pos() token.Position             { return e.Position }
func (e *BinaryExpr) Pos() token.Position            { return e.Position }

func (*NilLit) exprNode()               {}
func (*BoolLit) exprNode()              {}
func (*NumberLit) exprNode()            {}
func (*StringLit) exprNode()            {}
func (*VarargsExpr) exprNode()          {}
func (*NameExpr) exprNode()             {}
func (*IndexExpr) exprNode()            {}
func (*FieldExpr) exprNode()            {}
func (*CallExpr) exprNode()             {}
func (*MethodCallExpr) exprNode()       {}
func (*FunctionExpr) exprNode()         {}
func (*TableConstructorExpr) exprNode() {}
func (*UnaryExpr) exprNode()            {}
func (*BinaryExpr) exprNode()           {}

// IsMultiValue reports whether an expression can yield more than one
// value when it is the last element of an expression list (function and
// method calls, and the `...` varargs expression).
func IsMultiValue(e Expr) bool {
	switch e.(type) {
	case *CallExpr, *MethodCallExpr, *VarargsExpr:
		return true
	default:
		return false
	}
}
