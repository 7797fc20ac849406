package ast

import "github.com/redis-eval/redis-eval/internal/token"

// IfStmt is `if c1 then b1 elseif c2 then b2 ... else be end`. Branches
// holds (condition, body) pairs in source order; Else is nil when there
// is no else clause.
type IfStmt struct {
	Position token.Position
	Branches []IfBranch
	Else     Block
}

// IfBranch is one `cond then body` clause of an IfStmt.
type IfBranch struct {
	Cond Expr
	Body Block
}

// WhileStmt is `while Cond do Body end`.
type WhileStmt struct {
	Position token.Position
	Cond     Expr
	Body     Block
}

// RepeatStmt is `repeat Body until Cond`; Cond is evaluated in Body's
// scope, so locals declared in Body are visible to it.
type RepeatStmt struct {
	Position token.Position
	Body     Block
	Cond     Expr
}

// NumericForStmt is `for Name = Start, Stop[, Step] do Body end`.
type NumericForStmt struct {
	Position token.Position
	Name     string
	Start    Expr
	Stop     Expr
	Step     Expr // nil means default step of 1
	Body     Block
}

// GenericForStmt is `for Names in Exprs do Body end`.
type GenericForStmt struct {
	Position token.Position
	Names    []string
	Exprs    []Expr
	Body     Block
}

// DoStmt is a bare `do Body end` block, introducing a fresh scope.
type DoStmt struct {
	Position token.Position
	Body     Block
}

// LocalStmt is `local Names = Exprs`; Exprs may be shorter than Names
// (missing slots bind nil) and only its last element expands multiple
// values.
type LocalStmt struct {
	Position token.Position
	Names    []string
	Exprs    []Expr
}

// LocalFunctionStmt is `local function Name(Params) Body end`.
type LocalFunctionStmt struct {
	Position   token.Position
	Name       string
	Params     []string
	IsVariadic bool
	Body       Block
}

// FunctionDeclStmt is `function Name1.Name2...(Params) Body end`; a
// single-element Names assigns a global, a multi-element Names chain
// assigns into nested table fields.
type FunctionDeclStmt struct {
	Position   token.Position
	Names      []string
	Params     []string
	IsVariadic bool
	Body       Block
}

// ReturnStmt is `return Exprs`; only the last element of Exprs expands
// multiple values.
type ReturnStmt struct {
	Position token.Position
	Exprs    []Expr
}

// BreakStmt is `break`.
type BreakStmt struct{ Position token.Position }

// AssignStmt is `Lhs1, Lhs2, ... = Rhs1, Rhs2, ...`; only the last
// element of Rhs expands multiple values.
type AssignStmt struct {
	Position token.Position
	Lhs      []Expr
	Rhs      []Expr
}

// ExprStmt is a bare expression used as a statement (normally a call).
type ExprStmt struct {
	Position token.Position
	X        Expr
}

func (s *IfStmt) Pos() token.Position            { return s.Position }
func (s *WhileStmt) Pos() token.Position         { return s.Position }
func (s *RepeatStmt) Pos() token.Position        { return s.Position }
func (s *NumericForStmt) Pos() token.Position     { return s.Position }
func (s *GenericForStmt) Pos() token.Position     { return s.Position }
func (s *DoStmt) Pos() token.Position             { return s.Position }
func (s *LocalStmt) Pos() token.Position          { return s.Position }
func (s *LocalFunctionStmt) Pos() token.Position  { return s.Position }
func (s *FunctionDeclStmt) Pos() token.Position   { return s.Position }
func (s *ReturnStmt) Pos() token.Position         { return s.Position }
func (s *BreakStmt) Pos() token.Position          { return s.Position }
func (s *AssignStmt) Pos() token.Position         { return s.Position }
func (s *ExprStmt) Pos() token.Position           { return s.Position }

func (*IfStmt) stmtNode()            {}
func (*WhileStmt) stmtNode()         {}
func (*RepeatStmt) stmtNode()        {}
func (*NumericForStmt) stmtNode()    {}
func (*GenericForStmt) stmtNode()    {}
func (*DoStmt) stmtNode()            {}
func (*LocalStmt) stmtNode()         {}
func (*LocalFunctionStmt) stmtNode() {}
func (*FunctionDeclStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode()        {}
func (*BreakStmt) stmtNode()         {}
func (*AssignStmt) stmtNode()        {}
func (*ExprStmt) stmtNode()          {}
