package parser

import (
	"testing"

	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/lexer"
	"github.com/redis-eval/redis-eval/internal/token"
)

func mustParse(t *testing.T, src string) ast.Block {
	t.Helper()
	tokens, err := lexer.New([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	block, err := New(tokens).ParseChunk()
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return block
}

func TestParseIfElseIf(t *testing.T) {
	block := mustParse(t, `
if a then
  return 1
elseif b then
  return 2
else
  return 3
end`)
	if len(block) != 1 {
		t.Fatalf("got %d statements, want 1", len(block))
	}
	ifs, ok := block[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", block[0])
	}
	if len(ifs.Branches) != 2 {
		t.Fatalf("got %d branches, want 2", len(ifs.Branches))
	}
	if ifs.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestParseNumericFor(t *testing.T) {
	block := mustParse(t, `for i=1,10,2 do end`)
	f, ok := block[0].(*ast.NumericForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.NumericForStmt", block[0])
	}
	if f.Name != "i" || f.Step == nil {
		t.Errorf("got Name=%q Step=%v", f.Name, f.Step)
	}
}

func TestParseGenericFor(t *testing.T) {
	block := mustParse(t, `for k,v in pairs(t) do end`)
	f, ok := block[0].(*ast.GenericForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.GenericForStmt", block[0])
	}
	if len(f.Names) != 2 || f.Names[0] != "k" || f.Names[1] != "v" {
		t.Errorf("got Names=%v", f.Names)
	}
}

func TestParseLocalAssignAndFunctionDecl(t *testing.T) {
	block := mustParse(t, `
local a, b = 1, 2
function obj.method(x, ...)
  return x
end`)
	local, ok := block[0].(*ast.LocalStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.LocalStmt", block[0])
	}
	if len(local.Names) != 2 || len(local.Exprs) != 2 {
		t.Errorf("got Names=%v Exprs=%v", local.Names, local.Exprs)
	}

	fn, ok := block[1].(*ast.FunctionDeclStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDeclStmt", block[1])
	}
	if len(fn.Names) != 2 || !fn.IsVariadic {
		t.Errorf("got Names=%v IsVariadic=%v", fn.Names, fn.IsVariadic)
	}
}

func TestParseAssignmentMultiTarget(t *testing.T) {
	block := mustParse(t, `a, b.c, d[1] = 1, 2, 3`)
	assign, ok := block[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.AssignStmt", block[0])
	}
	if len(assign.Lhs) != 3 || len(assign.Rhs) != 3 {
		t.Fatalf("got Lhs=%v Rhs=%v", assign.Lhs, assign.Rhs)
	}
	if _, ok := assign.Lhs[1].(*ast.FieldExpr); !ok {
		t.Errorf("Lhs[1]: got %T, want *ast.FieldExpr", assign.Lhs[1])
	}
	if _, ok := assign.Lhs[2].(*ast.IndexExpr); !ok {
		t.Errorf("Lhs[2]: got %T, want *ast.IndexExpr", assign.Lhs[2])
	}
}

func TestParseBareCallStatement(t *testing.T) {
	block := mustParse(t, `print("hi")`)
	stmt, ok := block[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", block[0])
	}
	if _, ok := stmt.X.(*ast.CallExpr); !ok {
		t.Errorf("got %T, want *ast.CallExpr", stmt.X)
	}
}

func TestParseMethodCall(t *testing.T) {
	block := mustParse(t, `obj:method(1, 2)`)
	stmt := block[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.MethodCallExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.MethodCallExpr", stmt.X)
	}
	if call.Name != "method" || len(call.Args) != 2 {
		t.Errorf("got Name=%q Args=%v", call.Name, call.Args)
	}
}

func TestParseTableConstructor(t *testing.T) {
	block := mustParse(t, `local t = { 1, 2, x = 3, [4+1] = 5 }`)
	local := block[0].(*ast.LocalStmt)
	tbl, ok := local.Exprs[0].(*ast.TableConstructorExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.TableConstructorExpr", local.Exprs[0])
	}
	if len(tbl.Fields) != 4 {
		t.Fatalf("got %d fields, want 4", len(tbl.Fields))
	}
	if tbl.Fields[0].Key != nil {
		t.Errorf("field 0 should be positional, got key %v", tbl.Fields[0].Key)
	}
	if tbl.Fields[2].Key == nil {
		t.Errorf("field 2 (x=3) should have a key")
	}
}

// Precedence: `or` binds loosest, `and` next, `..` is right-associative
// and binds tighter than comparisons, `^` is right-associative and binds
// tighter than unary (§4.2).
func TestParsePrecedence(t *testing.T) {
	block := mustParse(t, `return 1 or 2 and 3`)
	ret := block[0].(*ast.ReturnStmt)
	bin, ok := ret.Exprs[0].(*ast.BinaryExpr)
	if !ok || bin.Op != token.OR {
		t.Fatalf("top-level op: got %#v, want OR", ret.Exprs[0])
	}
	if right, ok := bin.Right.(*ast.BinaryExpr); !ok || right.Op != token.AND {
		t.Errorf("right side: got %#v, want AND", bin.Right)
	}
}

func TestParseConcatRightAssociative(t *testing.T) {
	block := mustParse(t, `return "a" .. "b" .. "c"`)
	ret := block[0].(*ast.ReturnStmt)
	bin := ret.Exprs[0].(*ast.BinaryExpr)
	if bin.Op != token.CONCAT {
		t.Fatalf("got %v", bin.Op)
	}
	left, ok := bin.Left.(*ast.StringLit)
	if !ok || left.Value != "a" {
		t.Errorf("left should be the literal \"a\" (right-associative), got %#v", bin.Left)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Errorf("right should be the nested \"b\"..\"c\", got %#v", bin.Right)
	}
}

func TestParseExponentRightAssociativeBindsTighterThanUnary(t *testing.T) {
	block := mustParse(t, `return -2^2`)
	ret := block[0].(*ast.ReturnStmt)
	unary, ok := ret.Exprs[0].(*ast.UnaryExpr)
	if !ok || unary.Op != token.MINUS {
		t.Fatalf("got %#v, want unary minus wrapping 2^2", ret.Exprs[0])
	}
	if _, ok := unary.Operand.(*ast.BinaryExpr); !ok {
		t.Errorf("operand should be 2^2, got %#v", unary.Operand)
	}
}

func TestParseErrorsOnMissingEnd(t *testing.T) {
	tokens, err := lexer.New([]byte("if true then return 1")).Tokenize()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if _, err := New(tokens).ParseChunk(); err == nil {
		t.Fatal("expected a ParseError for a missing 'end'")
	}
}

func TestParseVarargsExpression(t *testing.T) {
	block := mustParse(t, `local function f(...) return ... end`)
	fn := block[0].(*ast.LocalFunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	if _, ok := ret.Exprs[0].(*ast.VarargsExpr); !ok {
		t.Errorf("got %T, want *ast.VarargsExpr", ret.Exprs[0])
	}
}
